// Package naming turns vendor setting keys and enum values into valid,
// idiomatic Swift identifiers.
//
// The rules are table driven (see Tables) so new special cases can be added
// from configuration without touching the algorithm.
package naming

import (
	"strings"
	"unicode"
)

// EmptyName is the identifier used for empty keys and values.
const EmptyName = "empty"

// Normalizer applies a fixed set of Tables.
type Normalizer struct {
	tables   Tables
	reserved map[string]struct{}
}

// New returns a Normalizer over a private copy of tables.
func New(tables Tables) *Normalizer {
	copied := Tables{}.Extend(tables)
	reserved := make(map[string]struct{}, len(copied.ReservedWords))
	for _, w := range copied.ReservedWords {
		reserved[w] = struct{}{}
	}
	return &Normalizer{tables: copied, reserved: reserved}
}

// Default returns a Normalizer over DefaultTables.
func Default() *Normalizer {
	return New(DefaultTables())
}

// CaseForKey returns the accessor identifier for a setting key,
// e.g. "GCC_OPTIMIZATION_LEVEL" -> "gccOptimizationLevel".
func (n *Normalizer) CaseForKey(key string) string {
	for _, p := range n.tables.NamespacePrefixes {
		if p.Key != "" && strings.HasPrefix(key, p.Key) {
			rest := SplitKey(key[len(p.Key):])
			return n.finalize(p.Ident + strings.Join(rest, ""))
		}
	}

	var parts []string
	for _, token := range SplitKey(key) {
		if expansion, ok := n.tables.Acronyms[token]; ok {
			parts = append(parts, expansion...)
			continue
		}
		if replacement, ok := n.tables.KeyReplacements[token]; ok {
			return n.finalize(LowerFirst(replacement))
		}
		parts = append(parts, Title(token))
	}

	if len(parts) > 0 {
		parts[0] = LowerFirst(parts[0])
	}
	return n.finalize(strings.Join(parts, ""))
}

// TypeName returns the nested enum type name for a setting key,
// e.g. "GCC_OPTIMIZATION_LEVEL" -> "GccOptimizationLevelValue".
func (n *Normalizer) TypeName(key string) string {
	return UpperFirst(n.CaseForKey(key)) + "Value"
}

// EnumCaseName returns the case name for a raw enum value.
func (n *Normalizer) EnumCaseName(value string) string {
	if value == "" {
		return EmptyName
	}

	for _, o := range n.tables.EnumOverrides {
		if value == o.Value || (o.IgnoreCase && strings.EqualFold(value, o.Value)) {
			return n.finalize(o.Name)
		}
	}

	for _, prefix := range n.tables.PlatformPrefixes {
		if prefix != "" && len(value) > len(prefix) && strings.HasPrefix(value, prefix) {
			return n.finalize(LowerFirst(value[len(prefix):]))
		}
	}

	if first := []rune(value)[0]; unicode.IsDigit(first) {
		return n.finalize("_" + value)
	}

	for _, r := range n.tables.SymbolRewrites {
		if r.From != "" && strings.Contains(value, r.From) {
			value = strings.ReplaceAll(value, r.From, r.To)
		}
	}

	return n.finalize(CamelCase(value, true))
}

// IsReserved reports whether word is in the reserved word table.
func (n *Normalizer) IsReserved(word string) bool {
	_, ok := n.reserved[word]
	return ok
}

// finalize makes id a valid identifier: runs of invalid runes become a
// single underscore, an empty or all-underscore result becomes EmptyName and
// a leading digit gets an underscore. Reserved words are capitalized, with a
// trailing underscore when the capitalized form is still a keyword (Self_).
func (n *Normalizer) finalize(id string) string {
	var sb strings.Builder
	lastInvalid := false
	for _, r := range id {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			lastInvalid = false
			continue
		}
		if !lastInvalid {
			sb.WriteRune('_')
		}
		lastInvalid = true
	}

	out := sb.String()
	if strings.Trim(out, "_") == "" {
		return EmptyName
	}
	if unicode.IsDigit([]rune(out)[0]) {
		out = "_" + out
	}
	if n.IsReserved(out) {
		out = UpperFirst(out)
		if isCapitalizedKeyword(out) {
			out += "_"
		}
	}
	return out
}

// capitalizedKeywords stay keywords after upper-casing the first letter.
var capitalizedKeywords = []string{"Self", "Type", "Protocol", "Any"}

func isCapitalizedKeyword(id string) bool {
	for _, k := range capitalizedKeywords {
		if id == k {
			return true
		}
	}
	return false
}
