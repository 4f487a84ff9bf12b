// Package setting defines the canonical build-setting model.
//
// A Setting is built once from a Raw option record, never mutated afterwards,
// merged into a Collection keyed on Key, and read by the emitters.
package setting

import "strings"

// VariablePrefix marks a value that references another build setting,
// e.g. "$(inherited)". Such values are never evaluated.
const VariablePrefix = "$("

// Setting is one build setting declared by a spec file.
type Setting struct {
	Name         string   `json:"name" yaml:"name"`
	Description  *string  `json:"description" yaml:"description"`
	Key          string   `json:"key" yaml:"key"`
	Type         Type     `json:"type" yaml:"type"`
	Category     *string  `json:"category" yaml:"category"`
	DefaultValue *string  `json:"default_value" yaml:"default_value"`
	EnumCases    []string `json:"enum_cases" yaml:"enum_cases"`
}

// Raw is the field tuple read from one option record.
type Raw struct {
	Name         string
	Key          string
	Description  *string
	Type         string
	Category     *string
	DefaultValue *string
	Values       []string
}

// New builds a Setting from a raw option record.
//
// Values are de-duplicated keeping first occurrence. A default that is not
// a variable reference and not already one of the values is appended to the
// enum cases, whatever the setting's type.
func New(raw Raw) *Setting {
	key := raw.Key
	if key == "" {
		key = raw.Name
	}

	s := &Setting{
		Name:         raw.Name,
		Description:  raw.Description,
		Key:          key,
		Type:         Canonicalize(raw.Type),
		Category:     raw.Category,
		DefaultValue: raw.DefaultValue,
		EnumCases:    uniqueOrdered(raw.Values),
	}

	if s.DefaultValue != nil && !IsVariableReference(*s.DefaultValue) && !s.HasCase(*s.DefaultValue) {
		s.EnumCases = append(s.EnumCases, *s.DefaultValue)
	}

	return s
}

// HasCase reports whether value is one of the setting's enum cases.
func (s *Setting) HasCase(value string) bool {
	for _, c := range s.EnumCases {
		if c == value {
			return true
		}
	}
	return false
}

// DescriptionLines splits the description into lines for doc comments.
// A nil description yields no lines.
func (s *Setting) DescriptionLines() []string {
	if s.Description == nil {
		return nil
	}
	return strings.Split(*s.Description, "\n")
}

// String returns the key, which identifies the setting.
func (s *Setting) String() string {
	return s.Key
}

// IsVariableReference reports whether value starts with "$(".
func IsVariableReference(value string) bool {
	return strings.HasPrefix(value, VariablePrefix)
}

func uniqueOrdered(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
