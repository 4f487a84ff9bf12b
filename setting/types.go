package setting

// Type is the canonical type of a build setting.
// Values outside the six constants below are raw vendor tokens that had no
// mapping; they are carried through unchanged and treated as opaque.
type Type string

const (
	TypeString      Type = "String"
	TypeStringList  Type = "StringList"
	TypePath        Type = "Path"
	TypePathList    Type = "PathList"
	TypeBoolean     Type = "Boolean"
	TypeEnumeration Type = "Enumeration"
)

// TypeMapping maps raw spec type tokens to canonical types.
// Lookups are case-sensitive: "bool" and "Bool" both appear in Xcode's specs.
var TypeMapping = map[string]Type{
	"string":                       TypeString,
	"stringlist":                   TypeStringList,
	"path":                         TypeString,
	"pathlist":                     TypeStringList,
	"bool":                         TypeBoolean,
	"Bool":                         TypeBoolean,
	"enum":                         TypeEnumeration,
	"CodeSignIdentity":             TypeString,
	"OpenCLArchitectures":          TypeString,
	"CodeSignStyle":                TypeEnumeration,
	"DevelopmentTeam":              TypeString,
	"ProvisioningProfileSpecifier": TypeString,
	"CompilerVersion":              TypeString,
	"ProvisioningProfile":          TypeString,
}

// Canonicalize maps a raw type token to its canonical type.
// Unknown tokens are returned unchanged.
func Canonicalize(raw string) Type {
	if t, ok := TypeMapping[raw]; ok {
		return t
	}
	return Type(raw)
}

// IsKnown reports whether t is one of the six canonical types.
func (t Type) IsKnown() bool {
	switch t {
	case TypeString, TypeStringList, TypePath, TypePathList, TypeBoolean, TypeEnumeration:
		return true
	}
	return false
}

// IsList reports whether values of t are whitespace-separated lists.
func (t Type) IsList() bool {
	return t == TypeStringList || t == TypePathList
}
