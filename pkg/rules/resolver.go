package rules

import (
	"github.com/arthur-debert/showcase/pkg/logging"
	"github.com/rs/zerolog"
)

// Resolver matches example names against the compiled rule list and
// applies matching rules' attributes and tags
type Resolver struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewResolver creates a resolver over the given compiled rules.
// Rule order is the configured declaration order and determines
// attribute precedence.
func NewResolver(rules []Rule) *Resolver {
	return &Resolver{
		rules:  rules,
		logger: logging.GetLogger("rules.resolver"),
	}
}

// Resolve applies every rule whose patterns match qualifiedName, in
// declaration order. Matching rules write their attributes into attrs,
// where the first writer of a name wins across the whole rule list;
// attrs arrives pre-seeded with the mandatory attributes, which no rule
// may override. The tags contributed by matching rules are returned in
// encounter order. Zero matches is not an error: the example simply
// gains nothing from this stage.
func (r *Resolver) Resolve(qualifiedName string, attrs *Attributes) []string {
	var ruleTags []string

	for _, rule := range r.rules {
		matched := false
		for _, pattern := range rule.Patterns {
			if pattern.Match(qualifiedName) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		ruleTags = append(ruleTags, rule.Tags...)
		for _, attr := range rule.Attributes {
			if attrs.Set(attr.Name, attr.Value) {
				r.logger.Debug().
					Str("example", qualifiedName).
					Str("attribute", attr.Name).
					Str("value", attr.Value).
					Msg("Rule attribute applied")
			}
		}
	}

	return ruleTags
}
