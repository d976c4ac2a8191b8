// Package config loads the showcase configuration: project identity,
// output locations, and the manifest metadata filter rules. Loading is
// layered: embedded defaults, then a showcase.toml (or .yaml) in the
// corpus root, then SHOWCASE_* environment overrides.
package config

import (
	"github.com/arthur-debert/showcase/pkg/rules"
)

// DocURL identifies the documentation set manifest entries link into
type DocURL struct {
	Namespace     string `koanf:"namespace"`
	VirtualFolder string `koanf:"virtual_folder"`
}

// Config is the full showcase configuration
type Config struct {
	// Project is the module identifier, e.g. "QtQuick". It names the
	// manifest's module attribute and seeds the module-derived tags.
	Project string `koanf:"project"`

	// OutputDir is where manifest files are written
	OutputDir string `koanf:"output_dir"`

	// ExamplesInstallPath is the default install path prepended to
	// project files and files-to-open; examples may override it
	ExamplesInstallPath string `koanf:"examples_install_path"`

	// DocURL locates the documentation pages entries link to
	DocURL DocURL `koanf:"doc_url"`

	// Filters are the manifest metadata filter rules in declaration
	// order, parsed from the manifestmeta key groups
	Filters []rules.FilterRule `koanf:"-"`
}

// DocURLRoot returns the documentation URL prefix for this project,
// always ending in '/'
func (c *Config) DocURLRoot() string {
	return "qthelp://" + c.DocURL.Namespace + "/" + c.DocURL.VirtualFolder + "/"
}
