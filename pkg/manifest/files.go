package manifest

import (
	"path/filepath"
	"sort"
	"strings"
)

// File-open priorities. A file whose base name matches the example name
// outranks the generic main.* fallbacks, and within each group the UI
// markup file outranks the source file outranks the header.
const (
	prioNameMarkup = iota
	prioNameSource
	prioNameHeader
	prioMainMarkup
	prioMainSource
)

// FilesToOpen selects and orders the files the consuming tool opens for
// an example. exampleName is the example's base name (the last path
// segment of its corpus identifier). Files matching none of the naming
// rules are excluded. When several files land on the same priority the
// first one in input order is kept. The result is ordered by ascending
// priority and the first entry is flagged as the main file.
func FilesToOpen(files []string, exampleName string) []FileOpenEntry {
	byPriority := make(map[int]string)

	for _, file := range files {
		fileName := strings.ToLower(filepath.Base(file))
		// base name runs up to the first dot, so compound extensions
		// like .ui.qml still match on the example name
		base, _, _ := strings.Cut(filepath.Base(file), ".")

		var priority int
		if strings.EqualFold(base, exampleName) {
			switch {
			case strings.HasSuffix(fileName, ".qml"):
				priority = prioNameMarkup
			case strings.HasSuffix(fileName, ".cpp"):
				priority = prioNameSource
			case strings.HasSuffix(fileName, ".h"):
				priority = prioNameHeader
			default:
				continue
			}
		} else if strings.HasSuffix(fileName, "main.qml") {
			priority = prioMainMarkup
		} else if strings.HasSuffix(fileName, "main.cpp") {
			priority = prioMainSource
		} else {
			continue
		}

		// first-seen wins per priority slot
		if _, taken := byPriority[priority]; !taken {
			byPriority[priority] = file
		}
	}

	// the main.* entries are fallbacks: once a file with the example's
	// own base name is selected they are dropped
	if hasNameMatch(byPriority) {
		delete(byPriority, prioMainMarkup)
		delete(byPriority, prioMainSource)
	}

	priorities := make([]int, 0, len(byPriority))
	for priority := range byPriority {
		priorities = append(priorities, priority)
	}
	sort.Ints(priorities)

	entries := make([]FileOpenEntry, 0, len(priorities))
	for i, priority := range priorities {
		entries = append(entries, FileOpenEntry{
			Path:     byPriority[priority],
			Priority: priority,
			Main:     i == 0,
		})
	}
	return entries
}

func hasNameMatch(byPriority map[int]string) bool {
	for _, priority := range []int{prioNameMarkup, prioNameSource, prioNameHeader} {
		if _, ok := byPriority[priority]; ok {
			return true
		}
	}
	return false
}
