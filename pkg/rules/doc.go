// Package rules implements the manifest metadata filter rules: name
// patterns matched against an example's qualified name, contributing
// extra attributes and tags to its manifest entry.
//
// # Pattern Conventions
//
// Name patterns recognize a single wildcard marker '*':
//
//   - `QtQuick/Animated Tiles` - Exact qualified-name match
//   - `*` - Catchall pattern, matches every example
//   - `QtQuick/*` - Prefix match on the text before the marker
//
// Only the first marker is significant. A marker anywhere past position
// zero degrades the pattern to a prefix match ending at the marker; the
// text after it is ignored. This is not glob syntax.
//
// # Attribute Precedence
//
// Every rule whose pattern matches contributes, in declaration order.
// When several matching rules define the same attribute the earliest
// writer wins; there is no per-rule short-circuit. Attributes seeded by
// the assembler before resolution (name, docUrl) can never be
// overridden by a rule.
//
// # Configuration
//
// Rules are declared in the manifestmeta section of showcase.toml:
//
//	[manifestmeta]
//	filters = ["highlighted", "module"]
//
//	[manifestmeta.highlighted]
//	names = ["QtQuick/Animated Tiles"]
//	attributes = ["isHighlighted"]
//
//	[manifestmeta.module]
//	names = ["*"]
//	tags = ["quick"]
//
// The filters list fixes the declaration order.
package rules
