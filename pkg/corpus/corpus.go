// Package corpus discovers example records in a documentation corpus.
// Each example is a directory carrying an example.toml descriptor with
// its title, brief and optional assets; the example's files are either
// listed explicitly in the descriptor or enumerated from disk. The
// scan is deterministic: examples are ordered by name and enumerated
// files are sorted.
package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/showcase/pkg/errors"
	"github.com/arthur-debert/showcase/pkg/logging"
	"github.com/arthur-debert/showcase/pkg/manifest"
)

// DescriptorName is the per-example metadata file
const DescriptorName = "example.toml"

// descriptor mirrors the example.toml structure
type descriptor struct {
	Title       string   `toml:"title"`
	Brief       string   `toml:"brief"`
	Tags        []string `toml:"tags"`
	ProjectFile string   `toml:"project_file"`
	Image       string   `toml:"image"`
	InstallPath string   `toml:"install_path"`
	Files       []string `toml:"files"`
}

// Scanner discovers example records under a corpus root
type Scanner struct {
	logger zerolog.Logger
}

// NewScanner creates a corpus scanner
func NewScanner() *Scanner {
	return &Scanner{
		logger: logging.GetLogger("corpus.scanner"),
	}
}

// Scan walks the corpus root and returns one record per example
// directory, ordered by name
func (s *Scanner) Scan(root string) ([]manifest.ExampleRecord, error) {
	s.logger.Debug().Str("root", root).Msg("Scanning corpus")

	var records []manifest.ExampleRecord

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() && strings.HasPrefix(entry.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if entry.IsDir() || entry.Name() != DescriptorName {
			return nil
		}

		record, err := s.loadExample(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		if serr, ok := err.(*errors.ShowcaseError); ok {
			return nil, serr
		}
		return nil, errors.Wrapf(err, errors.ErrCorpusScan,
			"failed to scan corpus %s", root)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	s.logger.Info().
		Int("examples", len(records)).
		Str("root", root).
		Msg("Corpus scan completed")

	return records, nil
}

// loadExample reads one example directory's descriptor and file list
func (s *Scanner) loadExample(root, dir string) (manifest.ExampleRecord, error) {
	name, err := filepath.Rel(root, dir)
	if err != nil {
		name = filepath.Base(dir)
	}
	name = filepath.ToSlash(name)

	data, err := os.ReadFile(filepath.Join(dir, DescriptorName))
	if err != nil {
		return manifest.ExampleRecord{}, errors.Wrapf(err, errors.ErrCorpusAccess,
			"failed to read descriptor for %s", name)
	}

	var desc descriptor
	if err := toml.Unmarshal(data, &desc); err != nil {
		return manifest.ExampleRecord{}, errors.Wrapf(err, errors.ErrExampleParse,
			"failed to parse descriptor for %s", name)
	}

	title := desc.Title
	if title == "" {
		title = filepath.Base(dir)
		s.logger.Warn().Str("example", name).Msg("Descriptor has no title, using directory name")
	}

	files := desc.Files
	if len(files) == 0 {
		files, err = s.enumerateFiles(dir)
		if err != nil {
			return manifest.ExampleRecord{}, err
		}
	}

	return manifest.ExampleRecord{
		Name:        name,
		Title:       title,
		Brief:       desc.Brief,
		ProjectFile: desc.ProjectFile,
		ImageFile:   desc.Image,
		Files:       files,
		Tags:        desc.Tags,
		InstallPath: desc.InstallPath,
	}, nil
}

// enumerateFiles lists an example's files relative to its directory,
// sorted for deterministic output. The descriptor itself is excluded.
func (s *Scanner) enumerateFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path == dir {
				return nil
			}
			if strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			// a subdirectory with its own descriptor is a separate
			// example; its files belong to that example only
			if _, err := os.Stat(filepath.Join(path, DescriptorName)); err == nil {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.Name() == DescriptorName {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCorpusAccess,
			"failed to enumerate files in %s", dir)
	}

	sort.Strings(files)
	return files, nil
}
