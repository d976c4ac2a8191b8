package manifest

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/showcase/pkg/errors"
	"github.com/arthur-debert/showcase/pkg/logging"
)

// Writer renders assembled manifest entries as the XML documents the
// consuming tool reads
type Writer struct {
	outputDir string
	project   string
	logger    zerolog.Logger
}

// NewWriter creates a writer that places manifest files in outputDir
func NewWriter(outputDir, project string) *Writer {
	return &Writer{
		outputDir: outputDir,
		project:   project,
		logger:    logging.GetLogger("manifest.writer"),
	}
}

// Write renders one category's entries to <category>-manifest.xml and
// returns the written file path. Entries must not be empty: the caller
// skips document creation for categories without examples.
func (w *Writer) Write(category string, entries []Entry) (string, error) {
	doc := w.Render(category, entries)

	outputPath := filepath.Join(w.outputDir, category+"-manifest.xml")
	doc.Indent(4)
	if err := doc.WriteToFile(outputPath); err != nil {
		return "", errors.Wrapf(err, errors.ErrManifestWrite,
			"failed to write manifest %s", outputPath)
	}

	w.logger.Info().
		Str("category", category).
		Int("entries", len(entries)).
		Str("path", outputPath).
		Msg("Manifest written")

	return outputPath, nil
}

// Render builds the manifest document for one category without
// touching the filesystem
func (w *Writer) Render(category string, entries []Entry) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("instructionals")
	root.CreateAttr("module", w.project)
	group := root.CreateElement(category)

	elementName := strings.TrimSuffix(category, "s")
	for _, entry := range entries {
		w.renderEntry(group.CreateElement(elementName), entry)
	}

	return doc
}

func (w *Writer) renderEntry(element *etree.Element, entry Entry) {
	for _, name := range entry.Attributes.Names() {
		value, _ := entry.Attributes.Get(name)
		element.CreateAttr(name, value)
	}

	description := element.CreateElement("description")
	description.CreateCData(entry.Description)

	if len(entry.Tags) > 0 {
		element.CreateElement("tags").CreateText(strings.Join(entry.Tags, ","))
	}

	for _, file := range entry.FilesToOpen {
		fileElement := element.CreateElement("fileToOpen")
		if file.Main {
			fileElement.CreateAttr("mainFile", "true")
		}
		fileElement.CreateText(file.Path)
	}
}
