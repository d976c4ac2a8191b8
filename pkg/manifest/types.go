// Package manifest assembles example descriptors into the manifest
// documents consumed by the development-environment browser. The
// assembler is a pure transformation over example records and filter
// rules; the writer renders the assembled entries as XML.
package manifest

import (
	"github.com/arthur-debert/showcase/pkg/rules"
)

// Category names for the two manifest documents. Examples whose name
// carries the demos prefix are routed to the demos manifest, everything
// else to the examples manifest.
const (
	CategoryExamples = "examples"
	CategoryDemos    = "demos"
)

// DemosPrefix is the name prefix that routes an example to the demos category
const DemosPrefix = "demos"

// NoDescription is the fallback description for examples without a brief
const NoDescription = "No description available"

// ExampleRecord is one example as discovered in the corpus. Read-only
// input to the assembler.
type ExampleRecord struct {
	// Name is the example's path-like identifier within the corpus,
	// e.g. "animation/animatedtiles" or "demos/samegame"
	Name string

	// Title is the human-readable example title
	Title string

	// Brief is the short description, empty when the example has none
	Brief string

	// ProjectFile is the example's project file, relative to the
	// example directory; empty when there is none
	ProjectFile string

	// ImageFile is the example's thumbnail image, empty when absent
	ImageFile string

	// Files lists the example's files in discovery order
	Files []string

	// Tags holds explicit tag annotations from the example metadata;
	// each value may carry several comma-separated tags
	Tags []string

	// InstallPath overrides the configured examples install path
	// when non-empty
	InstallPath string
}

// FileOpenEntry is one file the consuming tool should open when the
// example is launched. Lower priority sorts first; the entry with the
// lowest priority is the main file.
type FileOpenEntry struct {
	Path     string
	Priority int
	Main     bool
}

// Entry is one assembled example descriptor, immutable after assembly
// and handed to the writer verbatim.
type Entry struct {
	Category    string
	Attributes  *rules.Attributes
	Description string
	Tags        []string
	FilesToOpen []FileOpenEntry
}
