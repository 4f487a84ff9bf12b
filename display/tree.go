package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/teranos/xcsettings/setting"
)

// Uncategorized labels settings without a category.
const Uncategorized = "(uncategorized)"

// SettingsTree renders settings grouped by category. caseNames maps keys to
// their Swift case; keys missing from it are marked as not generated.
func SettingsTree(title string, settings []*setting.Setting, caseNames map[string]string) string {
	groups := make(map[string][]*setting.Setting)
	for _, s := range settings {
		category := Uncategorized
		if s.Category != nil && *s.Category != "" {
			category = *s.Category
		}
		groups[category] = append(groups[category], s)
	}

	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	tree := treeprint.NewWithRoot(title)
	for _, c := range categories {
		branch := tree.AddMetaBranch(len(groups[c]), c)
		for _, s := range groups[c] {
			node := branch.AddMetaBranch(string(s.Type), s.Key)
			if name, ok := caseNames[s.Key]; ok {
				node.AddMetaNode("swift", "."+name)
			} else {
				node.AddMetaNode("swift", "not generated")
			}
			if s.DefaultValue != nil {
				node.AddMetaNode("default", *s.DefaultValue)
			}
			if len(s.EnumCases) > 0 && s.Type == setting.TypeEnumeration {
				node.AddMetaNode("cases", strings.Join(s.EnumCases, ", "))
			}
		}
	}
	return tree.String()
}

// CategoryCounts returns "category: n" lines sorted by category.
func CategoryCounts(settings []*setting.Setting) []string {
	counts := make(map[string]int)
	for _, s := range settings {
		category := Uncategorized
		if s.Category != nil && *s.Category != "" {
			category = *s.Category
		}
		counts[category]++
	}
	lines := make([]string, 0, len(counts))
	for c, n := range counts {
		lines = append(lines, fmt.Sprintf("%s: %d", c, n))
	}
	sort.Strings(lines)
	return lines
}
