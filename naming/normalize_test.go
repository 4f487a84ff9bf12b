package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identifierPattern = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		text       string
		startLower bool
		want       string
	}{
		{"FOO_BAR", true, "fooBar"},
		{"FOO_BAR", false, "FooBar"},
		{"foo-bar.baz+qux", false, "FooBarBazQux"},
		{"foo__--bar", true, "fooBar"},
		{"compiler-default", true, "compilerDefault"},
		{"a", true, "a"},
		{"A", true, "a"},
		{"x", false, "X"},
		{"armv7s", true, "armv7S"},
		{"x86_64h", false, "X8664H"},
		{"arm64e", false, "Arm64E"},
		{"", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.text, tt.startLower))
		})
	}
}

func TestSplitKey(t *testing.T) {
	assert.Equal(t, []string{"GCC", "OPTIMIZATION", "LEVEL"}, SplitKey("GCC_OPTIMIZATION_LEVEL"))
	assert.Equal(t, []string{"a", "b"}, SplitKey("_a.-b+"))
	assert.Empty(t, SplitKey("__"))
}

func TestCaseForKey(t *testing.T) {
	n := Default()

	tests := []struct {
		key  string
		want string
	}{
		{"FOO_BAR", "fooBar"},
		{"GCC_OPTIMIZATION_LEVEL", "gccOptimizationLevel"},
		{"CLANG_ENABLE_OBJC_ARC", "clangEnableObjectiveCArc"},
		{"CLANG_CXX_LANGUAGE_STANDARD", "clangCPlusPlusLanguageStandard"},
		{"IPHONEOS_DEPLOYMENT_TARGET", "iPhoneOSDeploymentTarget"},
		{"WATCHOS_DEPLOYMENT_TARGET", "watchOSDeploymentTarget"},
		{"ARCHS", "architectures"},
		{"VALID_ARCHS", "validArchitectures"},
		{"SDKROOT", "sdkRoot"},
		// a replacement token discards every other token
		{"SUPPORTED_SDKROOT_NAMES", "sdkRoot"},
		{"INFOPLIST_KEY_CFBundleDisplayName", "infoPlistKeyCFBundleDisplayName"},
		{"INFOPLIST_KEY_UIApplicationSceneManifest_Generation", "infoPlistKeyUIApplicationSceneManifestGeneration"},
		{"1_FOO", "_1Foo"},
		{"ARM64E_FLAG", "arm64EFlag"},
		{"ENABLE_SSE4_1", "enableSse41"},
		{"", "empty"},
		{"__", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, n.CaseForKey(tt.key))
		})
	}
}

func TestCapitalizedKeywordsGetSuffix(t *testing.T) {
	n := Default()
	assert.Equal(t, "Self_", n.CaseForKey("SELF"))
	assert.Equal(t, "Self_", n.EnumCaseName("self"))
	assert.Equal(t, "Self_", n.EnumCaseName("Self"))
	assert.Equal(t, "type", n.EnumCaseName("type"))

	extended := New(DefaultTables().Extend(Tables{ReservedWords: []string{"type"}}))
	assert.Equal(t, "Type_", extended.EnumCaseName("type"))
}

func TestTypeName(t *testing.T) {
	n := Default()
	assert.Equal(t, "GccOptimizationLevelValue", n.TypeName("GCC_OPTIMIZATION_LEVEL"))
	assert.Equal(t, "CodeSignStyleValue", n.TypeName("CODE_SIGN_STYLE"))
}

func TestEnumCaseName(t *testing.T) {
	n := Default()

	tests := []struct {
		value string
		want  string
	}{
		{"", "empty"},
		{"default", "Default"},
		{"DEFAULT", "Default"},
		{"extension", "Extension"},
		{"XML", "XML"},
		{"Binary", "Binary"},
		{"UIStatusBarStyleDefault", "Default"},
		{"UIStatusBarStyleLightContent", "lightContent"},
		{"UIStatusBarStyleDarkContent", "darkContent"},
		{"3D", "_3D"},
		{"10.0", "_10_0"},
		{"c++11", "cPlusPlus11"},
		{"gnu++14", "gnuPlusPlus14"},
		{"libc++", "libcPlusPlus"},
		{"compiler-default", "compilerDefault"},
		{"Automatic", "automatic"},
		{"YES", "yes"},
		{"s", "s"},
		{"class", "Class"},
		{"arm64e", "arm64E"},
		{"armv7s", "armv7S"},
		{"self", "Self_"},
		{"protocol", "Protocol_"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, n.EnumCaseName(tt.value))
		})
	}
}

func TestEnumCaseName_DeclaredOrder(t *testing.T) {
	n := Default()
	var got []string
	for _, v := range []string{"", "default", "3D"} {
		got = append(got, n.EnumCaseName(v))
	}
	assert.Equal(t, []string{"empty", "Default", "_3D"}, got)
}

func TestIdentifierValidity(t *testing.T) {
	n := Default()
	inputs := []string{
		"", " ", "_", "-", "++", "$(inherited)", "$(SRCROOT)/foo",
		"0", "9LIVES", "64-bit", "a b c", "FOO$BAR", "foo/bar", "@rpath",
		"-O3", "x86_64", "INFOPLIST_KEY_", "INFOPLIST_KEY_$x", "UIStatusBarStyle",
		"class", "default", "ünïcödé", "c++", "..", "a..b",
		"self", "SELF", "Type", "protocol", "PROTOCOL",
	}

	for _, in := range inputs {
		key := n.CaseForKey(in)
		assert.Regexp(t, identifierPattern, key, "CaseForKey(%q)", in)

		name := n.EnumCaseName(in)
		assert.Regexp(t, identifierPattern, name, "EnumCaseName(%q)", in)
		assert.False(t, n.IsReserved(name), "EnumCaseName(%q) is reserved", in)
		assert.NotContains(t, capitalizedKeywords, name, "EnumCaseName(%q)", in)
		assert.NotContains(t, capitalizedKeywords, key, "CaseForKey(%q)", in)
	}
}

func TestTablesAreConfiguration(t *testing.T) {
	tables := Tables{
		Acronyms:        map[string][]string{"HTTP": {"Http"}},
		KeyReplacements: map[string]string{"WEIRD": "NotWeird"},
		EnumOverrides:   []Override{{Value: "on", Name: "enabled"}},
	}
	n := New(tables)

	assert.Equal(t, "httpProxy", n.CaseForKey("HTTP_PROXY"))
	assert.Equal(t, "notWeird", n.CaseForKey("A_WEIRD_KEY"))
	assert.Equal(t, "enabled", n.EnumCaseName("on"))
	// Without the default tables the special cases are gone
	assert.Equal(t, "default", n.EnumCaseName("default"))

	// The normalizer keeps its own copy
	tables.Acronyms["HTTP"] = []string{"Changed"}
	assert.Equal(t, "httpProxy", n.CaseForKey("HTTP_PROXY"))
}

func TestTablesExtend(t *testing.T) {
	base := DefaultTables()
	extended := base.Extend(Tables{
		Acronyms:      map[string][]string{"ARCHS": {"Arch", "List"}},
		EnumOverrides: []Override{{Value: "XML", Name: "xmlFormat"}},
		ReservedWords: []string{"none"},
	})

	n := New(extended)
	assert.Equal(t, "archList", n.CaseForKey("ARCHS"))
	assert.Equal(t, "xmlFormat", n.EnumCaseName("XML"))
	assert.Equal(t, "None", n.EnumCaseName("none"))

	// base is untouched
	require.Equal(t, []string{"Architectures"}, base.Acronyms["ARCHS"])
	assert.Equal(t, "XML", Default().EnumCaseName("XML"))
}
