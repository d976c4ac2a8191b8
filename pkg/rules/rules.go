package rules

import (
	"strings"
)

// Wildcard is the marker character recognized in name patterns
const Wildcard = "*"

// FilterRule is one configured filter as loaded from configuration:
// raw name patterns, attribute tokens ("name:value" or bare "name"),
// and tags to apply on a match. Immutable once loaded.
type FilterRule struct {
	Names      []string `koanf:"names"`
	Attributes []string `koanf:"attributes"`
	Tags       []string `koanf:"tags"`
}

type patternKind int

const (
	patternExact patternKind = iota
	patternCatchAll
	patternPrefix
)

// Pattern is a compiled name pattern. The wildcard marker is resolved
// once at rule-load time: absent means exact match, a leading marker
// matches everything, anything else degrades to a prefix match on the
// literal text before the first marker. Text after the marker is
// ignored; interior wildcards are not glob patterns.
type Pattern struct {
	kind    patternKind
	literal string
}

// CompilePattern resolves the wildcard position in a raw name pattern
func CompilePattern(raw string) Pattern {
	switch idx := strings.Index(raw, Wildcard); idx {
	case -1:
		return Pattern{kind: patternExact, literal: raw}
	case 0:
		return Pattern{kind: patternCatchAll}
	default:
		return Pattern{kind: patternPrefix, literal: raw[:idx]}
	}
}

// Match reports whether the pattern matches the qualified name
func (p Pattern) Match(qualifiedName string) bool {
	switch p.kind {
	case patternExact:
		return qualifiedName == p.literal
	case patternCatchAll:
		return true
	default:
		return strings.HasPrefix(qualifiedName, p.literal)
	}
}

// Attribute is a single parsed attribute token. A bare token carries
// the implicit value "true".
type Attribute struct {
	Name  string
	Value string
}

// ParseAttribute splits an attribute token on the first ':'. The value
// keeps any later colons (URLs are common values).
func ParseAttribute(token string) Attribute {
	name, value, found := strings.Cut(token, ":")
	if !found {
		value = "true"
	}
	return Attribute{Name: name, Value: value}
}

// Rule is a compiled FilterRule ready for matching
type Rule struct {
	Patterns   []Pattern
	Attributes []Attribute
	Tags       []string
}

// Compile turns loaded filter rules into their matchable form,
// preserving declaration order.
func Compile(filters []FilterRule) []Rule {
	rules := make([]Rule, 0, len(filters))
	for _, filter := range filters {
		rule := Rule{
			Patterns:   make([]Pattern, 0, len(filter.Names)),
			Attributes: make([]Attribute, 0, len(filter.Attributes)),
			Tags:       filter.Tags,
		}
		for _, name := range filter.Names {
			rule.Patterns = append(rule.Patterns, CompilePattern(name))
		}
		for _, token := range filter.Attributes {
			rule.Attributes = append(rule.Attributes, ParseAttribute(token))
		}
		rules = append(rules, rule)
	}
	return rules
}
