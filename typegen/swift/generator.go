// Package swift emits the typed Swift surface for build settings: a
// BuildSetting enum with one case per setting, value enums for enumeration
// settings, and the glue that turns cases into a ProjectDescription
// SettingsDictionary.
package swift

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/xcsettings/logger"
	"github.com/teranos/xcsettings/naming"
	"github.com/teranos/xcsettings/setting"
	"github.com/teranos/xcsettings/typegen"
	buildinfo "github.com/teranos/xcsettings/version"
)

const (
	// DefaultEnumName is the name of the generated union type
	DefaultEnumName = "BuildSetting"
	// DefaultModule is imported by the generated file
	DefaultModule = "ProjectDescription"

	tab = "    "
)

// Generator implements typegen.Emitter for Swift
type Generator struct {
	// Normalizer names cases and types
	Normalizer *naming.Normalizer
	// Exclusions are setting keys left out of the union and the flattening switch
	Exclusions []string
	// EnumName overrides DefaultEnumName
	EnumName string
	// Module overrides DefaultModule
	Module string

	log *zap.SugaredLogger
}

// NewGenerator creates a Swift generator
func NewGenerator(n *naming.Normalizer, exclusions []string, log *zap.SugaredLogger) *Generator {
	if n == nil {
		n = naming.Default()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{
		Normalizer: n,
		Exclusions: exclusions,
		EnumName:   DefaultEnumName,
		Module:     DefaultModule,
		log:        log,
	}
}

// Name returns "swift"
func (g *Generator) Name() string {
	return "swift"
}

// FileExtension returns "swift"
func (g *Generator) FileExtension() string {
	return "swift"
}

// unionCase is one BuildSetting case.
type unionCase struct {
	setting *setting.Setting
	name    string
	label   string
	binding string
	payload string
	wrap    string
	def     string
	hasDef  bool
}

// valueEnum is one nested enum for an enumeration setting.
type valueEnum struct {
	typeName string
	names    []string
	raws     []string
	byRaw    map[string]string
}

// plan is the resolved set of identifiers for one document.
type plan struct {
	cases []unionCase
	enums []*valueEnum
}

// Emit implements typegen.Emitter.
func (g *Generator) Emit(doc *typegen.Document) ([]byte, error) {
	p := g.plan(doc.Settings)

	var sb strings.Builder
	g.writeHeader(&sb, doc.XcodeVersion)
	g.writeUnion(&sb, p)
	g.writeValueEnums(&sb, p)
	g.writeKeyValue(&sb, p)
	g.writeBoilerplate(&sb)
	return []byte(sb.String()), nil
}

func (g *Generator) plan(settings []*setting.Setting) *plan {
	excluded := make(map[string]struct{}, len(g.Exclusions))
	for _, k := range g.Exclusions {
		excluded[k] = struct{}{}
	}

	p := &plan{}
	// Nested types must not shadow the ProjectDescription types the glue uses
	typeNames := newNameSet(g.enumName(), "SettingValue", "SettingsDictionary")
	enums := make(map[string]*valueEnum)

	// Value enums come first: union payloads reference their type names.
	for _, s := range settings {
		if s.Type != setting.TypeEnumeration || len(s.EnumCases) == 0 {
			continue
		}
		e := &valueEnum{
			typeName: typeNames.claim(g.Normalizer.TypeName(s.Key)),
			byRaw:    make(map[string]string, len(s.EnumCases)),
		}
		caseNames := newNameSet("rawValue", "init")
		for _, raw := range s.EnumCases {
			name := caseNames.claim(g.Normalizer.EnumCaseName(raw))
			e.names = append(e.names, name)
			e.raws = append(e.raws, raw)
			e.byRaw[raw] = name
		}
		enums[s.Key] = e
		p.enums = append(p.enums, e)
	}

	caseNames := newNameSet("keyValue")
	for _, s := range settings {
		if _, skip := excluded[s.Key]; skip {
			g.log.Debugw("Excluding setting from Swift union", logger.FieldKey, s.Key)
			continue
		}
		if !s.Type.IsKnown() {
			g.log.Debugw("Skipping setting with unknown type",
				logger.FieldKey, s.Key,
				logger.FieldType, string(s.Type))
			continue
		}
		c := g.unionCase(s, enums[s.Key])
		c.name = caseNames.claim(g.Normalizer.CaseForKey(s.Key))
		p.cases = append(p.cases, c)
	}
	return p
}

func (g *Generator) unionCase(s *setting.Setting, e *valueEnum) unionCase {
	c := unionCase{setting: s}
	switch s.Type {
	case setting.TypeString:
		c.label, c.payload, c.wrap = "value", "String", ".string(%s)"
	case setting.TypePath:
		c.label, c.payload, c.wrap = "path", "String", ".string(%s)"
	case setting.TypeStringList:
		c.label, c.payload, c.wrap = "values", "[String]", ".array(%s)"
	case setting.TypePathList:
		c.label, c.payload, c.wrap = "paths", "[String]", ".array(%s)"
	case setting.TypeBoolean:
		c.label, c.payload, c.wrap = "bool", "Bool", ".init(booleanLiteral: %s)"
	case setting.TypeEnumeration:
		if e == nil {
			// Swift rejects raw-valued enums without cases
			c.label, c.payload, c.wrap = "value", "String", ".string(%s)"
			break
		}
		c.label, c.payload, c.wrap = "value", e.typeName, ".string(%s.rawValue)"
	}
	c.binding = c.label

	if s.Type == setting.TypeEnumeration && e != nil {
		if s.DefaultValue != nil && !setting.IsVariableReference(*s.DefaultValue) {
			if name, ok := e.byRaw[*s.DefaultValue]; ok {
				c.def, c.hasDef = "."+name, true
			}
		}
	} else if s.Type != setting.TypeEnumeration {
		c.def, c.hasDef = RenderDefault(s.Type, s.DefaultValue, g.Normalizer)
	}
	return c
}

func (g *Generator) enumName() string {
	if g.EnumName == "" {
		return DefaultEnumName
	}
	return g.EnumName
}

func (g *Generator) writeHeader(sb *strings.Builder, version string) {
	module := g.Module
	if module == "" {
		module = DefaultModule
	}
	sb.WriteString("// Code generated by xcsettings. DO NOT EDIT.\n")
	sb.WriteString(fmt.Sprintf("// Source version: Xcode %s\n", version))
	sb.WriteString(fmt.Sprintf("// Generator version: %s\n", buildinfo.Get().Generator()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("import %s\n", module))
	sb.WriteString("\n")
}

func (g *Generator) writeUnion(sb *strings.Builder, p *plan) {
	sb.WriteString(fmt.Sprintf("public enum %s {\n", g.enumName()))
	for i, c := range p.cases {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, line := range c.setting.DescriptionLines() {
			sb.WriteString(docComment(tab, line))
		}
		param := fmt.Sprintf("_ %s: %s", c.label, c.payload)
		if c.hasDef {
			param += " = " + c.def
		}
		sb.WriteString(fmt.Sprintf("%scase %s(%s)\n", tab, c.name, param))
	}
	sb.WriteString("}\n")
}

func (g *Generator) writeValueEnums(sb *strings.Builder, p *plan) {
	if len(p.enums) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("public extension %s {\n", g.enumName()))
	for i, e := range p.enums {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%senum %s: String {\n", tab, e.typeName))
		for j, name := range e.names {
			sb.WriteString(fmt.Sprintf("%s%scase %s = \"%s\"\n", tab, tab, name, escape(e.raws[j])))
		}
		sb.WriteString(tab + "}\n")
	}
	sb.WriteString("}\n")
}

func (g *Generator) writeKeyValue(sb *strings.Builder, p *plan) {
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("public extension %s {\n", g.enumName()))
	sb.WriteString(tab + "/// The build setting key and its value.\n")
	sb.WriteString(tab + "var keyValue: (String, SettingValue) {\n")
	sb.WriteString(tab + tab + "switch self {\n")
	for _, c := range p.cases {
		sb.WriteString(fmt.Sprintf("%scase let .%s(%s):\n", strings.Repeat(tab, 2), c.name, c.binding))
		sb.WriteString(fmt.Sprintf("%sreturn (%s, %s)\n",
			strings.Repeat(tab, 3), `"`+escape(c.setting.Key)+`"`, fmt.Sprintf(c.wrap, c.binding)))
	}
	sb.WriteString(strings.Repeat(tab, 2) + "default:\n")
	sb.WriteString(strings.Repeat(tab, 3) + "fatalError(\"Unsupported build setting: \\(self)\")\n")
	sb.WriteString(tab + tab + "}\n")
	sb.WriteString(tab + "}\n")
	sb.WriteString("}\n")
}

func (g *Generator) writeBoilerplate(sb *strings.Builder) {
	name := g.enumName()
	sb.WriteString("\n")
	sb.WriteString("public extension SettingsDictionary {\n")
	sb.WriteString(fmt.Sprintf("%s/// Creates a dictionary holding the given build settings.\n", tab))
	sb.WriteString(fmt.Sprintf("%sinit(_ buildSettings: [%s]) {\n", tab, name))
	sb.WriteString(tab + tab + "self.init()\n")
	sb.WriteString(tab + tab + "merge(buildSettings)\n")
	sb.WriteString(tab + "}\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s/// Sets every given build setting, replacing existing values.\n", tab))
	sb.WriteString(fmt.Sprintf("%smutating func merge(_ buildSettings: [%s]) {\n", tab, name))
	sb.WriteString(tab + tab + "for setting in buildSettings {\n")
	sb.WriteString(tab + tab + tab + "let (key, value) = setting.keyValue\n")
	sb.WriteString(tab + tab + tab + "self[key] = value\n")
	sb.WriteString(tab + tab + "}\n")
	sb.WriteString(tab + "}\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s/// Returns a copy with the given build settings applied.\n", tab))
	sb.WriteString(fmt.Sprintf("%sfunc merging(_ buildSettings: [%s]) -> SettingsDictionary {\n", tab, name))
	sb.WriteString(tab + tab + "var copy = self\n")
	sb.WriteString(tab + tab + "copy.merge(buildSettings)\n")
	sb.WriteString(tab + tab + "return copy\n")
	sb.WriteString(tab + "}\n")
	sb.WriteString("}\n")
}

func docComment(indent, line string) string {
	line = strings.TrimRight(line, " \t\r")
	if line == "" {
		return indent + "///\n"
	}
	return indent + "/// " + line + "\n"
}

// nameSet hands out unique identifiers, suffixing repeats with 2, 3, ...
type nameSet struct {
	taken map[string]struct{}
}

func newNameSet(reserved ...string) *nameSet {
	s := &nameSet{taken: make(map[string]struct{}, len(reserved))}
	for _, r := range reserved {
		s.taken[r] = struct{}{}
	}
	return s
}

func (s *nameSet) claim(name string) string {
	candidate := name
	for i := 2; ; i++ {
		if _, used := s.taken[candidate]; !used {
			break
		}
		candidate = name + strconv.Itoa(i)
	}
	s.taken[candidate] = struct{}{}
	return candidate
}

// CaseNames maps each key that gets a union case to its case identifier.
func (g *Generator) CaseNames(settings []*setting.Setting) map[string]string {
	p := g.plan(settings)
	names := make(map[string]string, len(p.cases))
	for _, c := range p.cases {
		names[c.setting.Key] = c.name
	}
	return names
}
