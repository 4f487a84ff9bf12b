package naming

// Override maps one literal enum value to a fixed case name.
type Override struct {
	Value      string
	Name       string
	IgnoreCase bool
}

// Rewrite replaces a symbol sequence with spelled-out tokens before casing.
type Rewrite struct {
	From string
	To   string
}

// Prefix is a namespaced key prefix whose suffix is kept verbatim.
// Key is matched against the raw setting key; Ident replaces it.
type Prefix struct {
	Key   string
	Ident string
}

// Tables is the configuration that drives identifier normalization.
// A Normalizer copies its Tables on construction; later changes to the
// caller's value have no effect.
type Tables struct {
	// Acronyms expands a key token into several title-cased tokens.
	Acronyms map[string][]string
	// KeyReplacements short-circuits the whole identifier to the
	// decapitalized replacement as soon as one token matches.
	KeyReplacements map[string]string
	// EnumOverrides are checked in order before any algorithmic casing.
	EnumOverrides []Override
	// PlatformPrefixes are stripped from enum values before decapitalizing.
	PlatformPrefixes []string
	// SymbolRewrites are applied to enum values before generic casing.
	SymbolRewrites []Rewrite
	// NamespacePrefixes keep the casing of the key suffix.
	NamespacePrefixes []Prefix
	// ReservedWords get their first letter upper-cased.
	ReservedWords []string
}

// DefaultTables returns the built-in tables for Xcode build settings.
func DefaultTables() Tables {
	return Tables{
		Acronyms: map[string][]string{
			"ARCHS":     {"Architectures"},
			"CPLUSPLUS": {"C", "Plus", "Plus"},
			"CXX":       {"C", "Plus", "Plus"},
			"DRIVERKIT": {"Driver", "Kit"},
			"ID":        {"ID"},
			"IPHONEOS":  {"IPhone", "OS"},
			"LTO":       {"LTO"},
			"MACOSX":    {"MacOS", "X"},
			"OBJC":      {"Objective", "C"},
			"TVOS":      {"Tv", "OS"},
			"URL":       {"URL"},
			"WATCHOS":   {"Watch", "OS"},
			"XROS":      {"Xr", "OS"},
		},
		KeyReplacements: map[string]string{
			"DSTROOT": "DstRoot",
			"OBJROOT": "ObjRoot",
			"SDKROOT": "SdkRoot",
			"SRCROOT": "SrcRoot",
			"SYMROOT": "SymRoot",
		},
		EnumOverrides: []Override{
			{Value: "default", Name: "Default", IgnoreCase: true},
			{Value: "extension", Name: "Extension"},
			{Value: "XML", Name: "XML"},
			{Value: "Binary", Name: "Binary"},
			{Value: "UIStatusBarStyleDefault", Name: "Default"},
		},
		PlatformPrefixes: []string{"UIStatusBarStyle"},
		SymbolRewrites: []Rewrite{
			{From: "++", To: "_plus_plus_"},
		},
		NamespacePrefixes: []Prefix{
			{Key: "INFOPLIST_KEY_", Ident: "infoPlistKey"},
		},
		ReservedWords: swiftKeywords,
	}
}

// Extend layers other on top of t and returns the result.
// Map entries in other win; overrides and prefixes from other are checked
// before the ones in t; reserved words are unioned.
func (t Tables) Extend(other Tables) Tables {
	out := Tables{
		Acronyms:        make(map[string][]string, len(t.Acronyms)+len(other.Acronyms)),
		KeyReplacements: make(map[string]string, len(t.KeyReplacements)+len(other.KeyReplacements)),
	}
	for k, v := range t.Acronyms {
		out.Acronyms[k] = append([]string(nil), v...)
	}
	for k, v := range other.Acronyms {
		out.Acronyms[k] = append([]string(nil), v...)
	}
	for k, v := range t.KeyReplacements {
		out.KeyReplacements[k] = v
	}
	for k, v := range other.KeyReplacements {
		out.KeyReplacements[k] = v
	}

	out.EnumOverrides = append(append([]Override(nil), other.EnumOverrides...), t.EnumOverrides...)
	out.PlatformPrefixes = append(append([]string(nil), other.PlatformPrefixes...), t.PlatformPrefixes...)
	out.SymbolRewrites = append(append([]Rewrite(nil), other.SymbolRewrites...), t.SymbolRewrites...)
	out.NamespacePrefixes = append(append([]Prefix(nil), other.NamespacePrefixes...), t.NamespacePrefixes...)
	out.ReservedWords = append(append([]string(nil), t.ReservedWords...), other.ReservedWords...)
	return out
}

// swiftKeywords cannot be used as bare case names in generated Swift.
var swiftKeywords = []string{
	"associatedtype", "as", "break", "case", "catch", "class", "continue",
	"default", "defer", "deinit", "do", "else", "enum", "extension",
	"fallthrough", "false", "fileprivate", "for", "func", "guard", "if",
	"import", "in", "init", "inout", "internal", "is", "let", "nil",
	"open", "operator", "private", "protocol", "public", "repeat",
	"rethrows", "return", "self", "static", "struct", "subscript",
	"super", "switch", "throw", "throws", "true", "try", "typealias",
	"var", "where", "while",
}
