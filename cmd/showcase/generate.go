package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/showcase/pkg/config"
	"github.com/arthur-debert/showcase/pkg/corpus"
	"github.com/arthur-debert/showcase/pkg/logging"
	"github.com/arthur-debert/showcase/pkg/manifest"
	"github.com/arthur-debert/showcase/pkg/rules"
)

var (
	outputDir string

	generateCmd = &cobra.Command{
		Use:   "generate [corpus-dir]",
		Short: "Generate manifest files for a corpus",
		Long: `Scan the corpus directory for examples and write one manifest file
per category (examples, demos) to the output directory. Categories
with no examples produce no file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for manifest files (overrides config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.generate")

	corpusRoot := "."
	if len(args) > 0 {
		corpusRoot = args[0]
	}

	cfg, err := config.Load(corpusRoot)
	if err != nil {
		pterm.Error.Printfln("Failed to load configuration: %v", err)
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		pterm.Error.Printfln("Failed to create output directory: %v", err)
		return err
	}

	examples, err := corpus.NewScanner().Scan(corpusRoot)
	if err != nil {
		pterm.Error.Printfln("Failed to scan corpus: %v", err)
		return err
	}
	if len(examples) == 0 {
		pterm.Warning.Printfln("No examples found in %s", corpusRoot)
		return nil
	}

	assembler := manifest.NewAssembler(
		cfg.Project,
		cfg.DocURLRoot(),
		cfg.ExamplesInstallPath,
		rules.Compile(cfg.Filters),
		nil,
	)
	writer := manifest.NewWriter(cfg.OutputDir, cfg.Project)

	written := 0
	for _, category := range []string{manifest.CategoryExamples, manifest.CategoryDemos} {
		entries := assembler.Assemble(category, examples)
		if len(entries) == 0 {
			logger.Debug().Str("category", category).Msg("No examples in category, skipping manifest")
			continue
		}

		path, err := writer.Write(category, entries)
		if err != nil {
			pterm.Error.Printfln("Failed to write %s manifest: %v", category, err)
			return err
		}
		pterm.Success.Printfln("%s: %d entries -> %s", category, len(entries), path)
		written++
	}

	if written == 0 {
		pterm.Warning.Println("No manifest files written")
	}
	return nil
}
