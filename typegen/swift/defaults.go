package swift

import (
	"strings"

	"github.com/teranos/xcsettings/naming"
	"github.com/teranos/xcsettings/setting"
)

// RenderDefault returns the Swift literal for a raw default of type t.
// The second result is false when there is no default or when it cannot be
// written as a literal (an enumeration default referencing another setting).
func RenderDefault(t setting.Type, raw *string, n *naming.Normalizer) (string, bool) {
	if raw == nil {
		return "", false
	}
	escaped := escape(*raw)

	switch t {
	case setting.TypeString, setting.TypePath:
		return `"` + escaped + `"`, true
	case setting.TypeStringList, setting.TypePathList:
		return stringArray(strings.Fields(escaped)), true
	case setting.TypeBoolean:
		if escaped == "YES" {
			return "true", true
		}
		return "false", true
	case setting.TypeEnumeration:
		if setting.IsVariableReference(escaped) {
			return "", false
		}
		return "." + n.EnumCaseName(*raw), true
	}
	return "", false
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func stringArray(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + it + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
