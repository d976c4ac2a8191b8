// Test Type: Unit Test
// Description: Tests for attribute resolution: rule matching order,
// first-writer-wins attribute merging, and rule tag collection

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/showcase/pkg/rules"
)

func TestResolver_Resolve(t *testing.T) {
	t.Run("first_writer_wins_across_all_matching_rules", func(t *testing.T) {
		// both rules match; the earlier-declared one sets the value
		resolver := rules.NewResolver(rules.Compile([]rules.FilterRule{
			{Names: []string{"QtQuick/*"}, Attributes: []string{"category:graphics"}},
			{Names: []string{"*"}, Attributes: []string{"category:misc", "isHighlighted"}},
		}))

		attrs := rules.NewAttributes()
		resolver.Resolve("QtQuick/Animated Tiles", attrs)

		category, _ := attrs.Get("category")
		assert.Equal(t, "graphics", category)

		// the later rule still contributes its unused attribute
		highlighted, _ := attrs.Get("isHighlighted")
		assert.Equal(t, "true", highlighted)
	})

	t.Run("later_rules_contribute_not_just_first_match", func(t *testing.T) {
		resolver := rules.NewResolver(rules.Compile([]rules.FilterRule{
			{Names: []string{"QtQuick/*"}, Attributes: []string{"a:1"}},
			{Names: []string{"QtQuick/Animated Tiles"}, Attributes: []string{"b:2"}},
		}))

		attrs := rules.NewAttributes()
		resolver.Resolve("QtQuick/Animated Tiles", attrs)

		assert.True(t, attrs.Has("a"))
		assert.True(t, attrs.Has("b"))
	})

	t.Run("seeded_attributes_are_never_overridden", func(t *testing.T) {
		resolver := rules.NewResolver(rules.Compile([]rules.FilterRule{
			{Names: []string{"*"}, Attributes: []string{"name:hijacked"}},
		}))

		attrs := rules.NewAttributes()
		attrs.Set("name", "Animated Tiles")
		resolver.Resolve("QtQuick/Animated Tiles", attrs)

		name, _ := attrs.Get("name")
		assert.Equal(t, "Animated Tiles", name)
	})

	t.Run("zero_matches_is_not_an_error", func(t *testing.T) {
		resolver := rules.NewResolver(rules.Compile([]rules.FilterRule{
			{Names: []string{"QtOpenGL/*"}, Attributes: []string{"gl"}},
		}))

		attrs := rules.NewAttributes()
		ruleTags := resolver.Resolve("QtQuick/Animated Tiles", attrs)

		assert.Empty(t, ruleTags)
		assert.Equal(t, 0, attrs.Len())
	})

	t.Run("matching_rules_union_their_tags", func(t *testing.T) {
		resolver := rules.NewResolver(rules.Compile([]rules.FilterRule{
			{Names: []string{"QtQuick/*"}, Tags: []string{"quick", "ui"}},
			{Names: []string{"*"}, Tags: []string{"qt"}},
			{Names: []string{"QtOpenGL/*"}, Tags: []string{"opengl"}},
		}))

		ruleTags := resolver.Resolve("QtQuick/Animated Tiles", rules.NewAttributes())

		assert.Equal(t, []string{"quick", "ui", "qt"}, ruleTags)
	})

	t.Run("resolution_is_idempotent", func(t *testing.T) {
		resolver := rules.NewResolver(rules.Compile([]rules.FilterRule{
			{Names: []string{"QtQuick/*"}, Attributes: []string{"category:graphics", "isHighlighted"}},
			{Names: []string{"*"}, Attributes: []string{"category:misc"}, Tags: []string{"qt"}},
		}))

		first := rules.NewAttributes()
		firstTags := resolver.Resolve("QtQuick/Animated Tiles", first)
		second := rules.NewAttributes()
		secondTags := resolver.Resolve("QtQuick/Animated Tiles", second)

		assert.Equal(t, first.Names(), second.Names())
		for _, name := range first.Names() {
			v1, _ := first.Get(name)
			v2, _ := second.Get(name)
			assert.Equal(t, v1, v2)
		}
		assert.Equal(t, firstTags, secondTags)
	})
}

func TestAttributes(t *testing.T) {
	t.Run("preserves_insertion_order", func(t *testing.T) {
		attrs := rules.NewAttributes()
		attrs.Set("name", "x")
		attrs.Set("docUrl", "y")
		attrs.Set("projectPath", "z")

		assert.Equal(t, []string{"name", "docUrl", "projectPath"}, attrs.Names())
	})

	t.Run("set_reports_whether_write_took_effect", func(t *testing.T) {
		attrs := rules.NewAttributes()
		assert.True(t, attrs.Set("a", "1"))
		assert.False(t, attrs.Set("a", "2"))

		value, ok := attrs.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "1", value)
	})
}
