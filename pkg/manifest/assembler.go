package manifest

import (
	"strings"

	"github.com/arthur-debert/showcase/pkg/logging"
	"github.com/arthur-debert/showcase/pkg/rules"
	"github.com/arthur-debert/showcase/pkg/tags"
	"github.com/rs/zerolog"
)

// Assembler turns example records into manifest entries, one category
// at a time. It holds only per-run read-only state: the project name,
// the documentation URL root, the configured install path, the compiled
// rule resolver, and the module-name tags computed once per run.
type Assembler struct {
	project     string
	docURLRoot  string
	installPath string
	resolver    *rules.Resolver
	moduleTags  []string
	sink        DiagnosticSink
	logger      zerolog.Logger
}

// NewAssembler creates an assembler for one generation run. docURLRoot
// is the documentation URL prefix ending in '/'; installPath is the
// configured default examples install path, overridable per example.
func NewAssembler(project, docURLRoot, installPath string, ruleList []rules.Rule, sink DiagnosticSink) *Assembler {
	if sink == nil {
		sink = NewLogSink()
	}
	return &Assembler{
		project:     project,
		docURLRoot:  docURLRoot,
		installPath: installPath,
		resolver:    rules.NewResolver(ruleList),
		moduleTags:  tags.FromModuleName(project),
		sink:        sink,
		logger:      logging.GetLogger("manifest.assembler"),
	}
}

// Assemble builds the manifest entries for one category in input
// order. Examples outside the category are skipped; a nil result means
// the category has no examples and no document should be produced.
func (a *Assembler) Assemble(category string, examples []ExampleRecord) []Entry {
	demos := category == CategoryDemos

	var entries []Entry
	candidates := tags.NewSet()

	for _, example := range examples {
		if demos != strings.HasPrefix(example.Name, DemosPrefix) {
			continue
		}
		entries = append(entries, a.assembleOne(category, example, candidates))
	}

	a.logger.Debug().
		Str("category", category).
		Int("entries", len(entries)).
		Msg("Category assembled")

	return entries
}

// assembleOne builds a single entry. The candidate tag set is shared
// across calls and cleared after each example, so no tag state leaks
// between entries.
func (a *Assembler) assembleOne(category string, example ExampleRecord, candidates *tags.Set) Entry {
	installPath := a.resolveInstallPath(example)

	attrs := rules.NewAttributes()
	attrs.Set("name", example.Title)
	attrs.Set("docUrl", a.docURLRoot+fileBase(example.Name)+".html")

	if example.ProjectFile != "" {
		attrs.Set("projectPath", installPath+example.ProjectFile)
	}
	if example.ImageFile != "" {
		attrs.Set("imageUrl", a.docURLRoot+example.ImageFile)
	}

	qualifiedName := a.project + "/" + example.Title
	ruleTags := a.resolver.Resolve(qualifiedName, attrs)

	warnAboutMissingAttributes(a.sink, attrs, example.Name)

	candidates.AddAll(ruleTags)
	candidates.AddAll(a.moduleTags)
	candidates.AddAll(tags.FromMetaTags(example.Tags))
	candidates.AddAll(tags.FromTitle(example.Title))
	candidates.Clean()
	finalTags := candidates.Sorted()
	candidates.Clear()

	description := example.Brief
	if description == "" {
		description = NoDescription
	}

	exampleName := example.Name[strings.LastIndex(example.Name, "/")+1:]
	filesToOpen := FilesToOpen(example.Files, exampleName)
	for i := range filesToOpen {
		filesToOpen[i].Path = installPath + filesToOpen[i].Path
	}

	return Entry{
		Category:    category,
		Attributes:  attrs,
		Description: description,
		Tags:        finalTags,
		FilesToOpen: filesToOpen,
	}
}

// resolveInstallPath returns the example's install path: the metadata
// override when present, otherwise the configured default, with a
// trailing '/' ensured when non-empty.
func (a *Assembler) resolveInstallPath(example ExampleRecord) string {
	installPath := example.InstallPath
	if installPath == "" {
		installPath = a.installPath
	}
	if installPath != "" && !strings.HasSuffix(installPath, "/") {
		installPath += "/"
	}
	return installPath
}

// fileBase derives the documentation page base name for an example:
// the corpus identifier lowercased with path separators folded to '-'
func fileBase(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "/", "-"))
}
