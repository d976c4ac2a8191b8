// Test Type: Unit Test
// Description: Tests for pattern compilation and matching in the rules package

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/showcase/pkg/rules"
)

func TestCompilePattern_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"exact_match", "QtQuick/Animated Tiles", "QtQuick/Animated Tiles", true},
		{"exact_mismatch", "QtQuick/Animated Tiles", "QtQuick/Animated", false},
		{"exact_no_prefix_semantics", "QtQuick", "QtQuickControls", false},
		{"catch_all_matches_everything", "*", "anything/at all", true},
		{"catch_all_matches_empty", "*", "", true},
		{"prefix_match", "QtQuick/*", "QtQuick/Animated Tiles", true},
		{"prefix_mismatch", "QtQuick/*", "QtOpenGL/Cube", false},
		{"prefix_matches_itself", "QtQuick/*", "QtQuick/", true},
		// wildcard suffixes beyond the first marker are dropped, the
		// pattern degrades to a prefix match
		{"interior_wildcard_degrades_to_prefix", "Qt*Tiles", "QtQuick/Animated Tiles", true},
		// the suffix after the marker is not required to match
		{"interior_wildcard_suffix_ignored", "Qt*Tiles", "QtOpenGL/Cube", true},
		{"interior_wildcard_prefix_still_required", "Qt*Tiles", "Charts/Bar Chart", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := rules.CompilePattern(tt.pattern)
			assert.Equal(t, tt.want, pattern.Match(tt.input))
		})
	}
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantName  string
		wantValue string
	}{
		{"name_value_pair", "category:graphics", "category", "graphics"},
		{"bare_name_implies_true", "isHighlighted", "isHighlighted", "true"},
		{"value_keeps_later_colons", "docUrl:https://doc.qt.io/", "docUrl", "https://doc.qt.io/"},
		{"empty_value", "category:", "category", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := rules.ParseAttribute(tt.token)
			assert.Equal(t, tt.wantName, attr.Name)
			assert.Equal(t, tt.wantValue, attr.Value)
		})
	}
}

func TestCompile(t *testing.T) {
	filters := []rules.FilterRule{
		{
			Names:      []string{"QtQuick/*", "demos/samegame"},
			Attributes: []string{"isHighlighted", "category:graphics"},
			Tags:       []string{"quick"},
		},
		{
			Names: []string{"*"},
			Tags:  []string{"qt"},
		},
	}

	compiled := rules.Compile(filters)

	assert.Len(t, compiled, 2)
	assert.Len(t, compiled[0].Patterns, 2)
	assert.Len(t, compiled[0].Attributes, 2)
	assert.Equal(t, []string{"quick"}, compiled[0].Tags)
	assert.Equal(t, "isHighlighted", compiled[0].Attributes[0].Name)
	assert.Equal(t, "true", compiled[0].Attributes[0].Value)
	assert.True(t, compiled[1].Patterns[0].Match("whatever"))
}
