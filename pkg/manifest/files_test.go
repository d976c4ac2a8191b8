// Test Type: Unit Test
// Description: Tests for the file-to-open prioritization heuristic

package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/showcase/pkg/manifest"
)

func TestFilesToOpen(t *testing.T) {
	t.Run("base_name_matches_ordered_by_extension", func(t *testing.T) {
		files := []string{"foo.cpp", "foo.h", "foo.qml"}
		entries := manifest.FilesToOpen(files, "foo")

		require.Len(t, entries, 3)
		assert.Equal(t, "foo.qml", entries[0].Path)
		assert.True(t, entries[0].Main)
		assert.Equal(t, "foo.cpp", entries[1].Path)
		assert.False(t, entries[1].Main)
		assert.Equal(t, "foo.h", entries[2].Path)
		assert.False(t, entries[2].Main)
	})

	t.Run("main_fallbacks_dropped_when_base_name_matches", func(t *testing.T) {
		files := []string{"foo.qml", "foo.cpp", "foo.h", "main.cpp"}
		entries := manifest.FilesToOpen(files, "foo")

		require.Len(t, entries, 3)
		for _, entry := range entries {
			assert.NotEqual(t, "main.cpp", entry.Path)
		}
	})

	t.Run("main_qml_outranks_main_cpp", func(t *testing.T) {
		files := []string{"main.cpp", "main.qml"}
		entries := manifest.FilesToOpen(files, "foo")

		require.Len(t, entries, 2)
		assert.Equal(t, "main.qml", entries[0].Path)
		assert.True(t, entries[0].Main)
		assert.Equal(t, "main.cpp", entries[1].Path)
	})

	t.Run("base_name_runs_to_first_dot", func(t *testing.T) {
		// compound extensions keep the base-name match
		files := []string{"foo.ui.qml"}
		entries := manifest.FilesToOpen(files, "foo")

		require.Len(t, entries, 1)
		assert.Equal(t, "foo.ui.qml", entries[0].Path)
		assert.True(t, entries[0].Main)
	})

	t.Run("base_name_match_is_case_insensitive", func(t *testing.T) {
		entries := manifest.FilesToOpen([]string{"Foo.Qml"}, "foo")

		require.Len(t, entries, 1)
		assert.Equal(t, "Foo.Qml", entries[0].Path)
		assert.True(t, entries[0].Main)
	})

	t.Run("unmatched_files_excluded", func(t *testing.T) {
		files := []string{"README.md", "bar.cpp", "foo.py"}
		entries := manifest.FilesToOpen(files, "foo")

		assert.Empty(t, entries)
	})

	t.Run("first_seen_wins_per_priority_slot", func(t *testing.T) {
		// both land on the same priority; the earlier one is kept
		files := []string{"src/foo.cpp", "other/foo.cpp"}
		entries := manifest.FilesToOpen(files, "foo")

		require.Len(t, entries, 1)
		assert.Equal(t, "src/foo.cpp", entries[0].Path)
	})

	t.Run("paths_with_directories_match_on_base_name", func(t *testing.T) {
		files := []string{"src/animatedtiles.qml", "src/main.cpp"}
		entries := manifest.FilesToOpen(files, "animatedtiles")

		require.Len(t, entries, 1)
		assert.Equal(t, "src/animatedtiles.qml", entries[0].Path)
		assert.True(t, entries[0].Main)
	})

	t.Run("exactly_one_main_when_any_selected", func(t *testing.T) {
		files := []string{"foo.h", "foo.cpp", "main.qml"}
		entries := manifest.FilesToOpen(files, "foo")

		mains := 0
		for _, entry := range entries {
			if entry.Main {
				mains++
			}
		}
		assert.Equal(t, 1, mains)
		// lowest surviving priority carries the flag
		assert.Equal(t, "foo.cpp", entries[0].Path)
		assert.True(t, entries[0].Main)
	})

	t.Run("no_files_no_entries", func(t *testing.T) {
		assert.Empty(t, manifest.FilesToOpen(nil, "foo"))
	})
}
