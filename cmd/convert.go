// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// load → parse/classify → render → write.
//
// It handles flag validation, source and renderer selection, and surfaces
// parser warnings (dropped paragraphs, lenient skips) on stderr.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evaldasg/md--betterspecs-org/core"
	"github.com/evaldasg/md--betterspecs-org/core/fetch"
	"github.com/evaldasg/md--betterspecs-org/core/output"
	"github.com/evaldasg/md--betterspecs-org/core/parse"
	"github.com/evaldasg/md--betterspecs-org/core/render"
)

// Flag variables.
var (
	flagInput            string
	flagURL              string
	flagOutput           string
	flagOutputDir        string
	flagLang             string
	flagCodeClasses      []string
	flagLenient          bool
	flagKeepUnrecognized bool
	flagMarkdown         bool
	flagJSON             bool
	flagPDF              bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the style guide to Markdown, JSON, or PDF",
	Long: `Convert loads the style guide (from the live site by default, or from a
locally saved HTML file), classifies every guideline paragraph, and writes the
rendered document.

Examples:
  betterspecs-md convert
  betterspecs-md convert --input betterspecs.html --output betterspecs.md
  betterspecs-md convert --json --output_dir ./out
  betterspecs-md convert --pdf --lenient`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Source flags (mutually exclusive).
	convertCmd.Flags().StringVar(&flagInput, "input", "", "Path to a locally saved copy of the guide HTML")
	convertCmd.Flags().StringVar(&flagURL, "url", fetch.DefaultURL, "URL of the guide to fetch")

	// Output format flags (at most one; Markdown is the default).
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown (default)")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	// Destination.
	convertCmd.Flags().StringVar(&flagOutput, "output", "", "Output file path (default: derived from the source)")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")

	// Conversion behavior.
	convertCmd.Flags().StringVar(&flagLang, "lang", render.DefaultLang, "Fence language tag for code examples")
	convertCmd.Flags().StringSliceVar(&flagCodeClasses, "code-classes", nil, "Class attribute values marking code-example paragraphs")
	convertCmd.Flags().BoolVar(&flagLenient, "lenient", false, "Skip structural violations with a warning instead of aborting")
	convertCmd.Flags().BoolVar(&flagKeepUnrecognized, "keep-unrecognized", false, "Convert unrecognized paragraphs instead of dropping them")

	viper.BindPFlag("url", convertCmd.Flags().Lookup("url"))
	viper.BindPFlag("output_dir", convertCmd.Flags().Lookup("output_dir"))
	viper.BindPFlag("lang", convertCmd.Flags().Lookup("lang"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := validateFlags(cmd); err != nil {
		return err
	}

	renderer := selectRenderer()
	source := selectSource()

	parser := parse.New(parse.Options{
		CodeClasses:      flagCodeClasses,
		Lenient:          flagLenient,
		KeepUnrecognized: flagKeepUnrecognized,
	})

	writer, err := output.New(viper.GetString("output_dir"))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	src, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	guide, err := parser.Parse(src)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	for _, warning := range guide.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	data, err := renderer.Render(guide)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(flagOutput, src.Origin, data, renderer.Extension())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s (%d guidelines)\n", path, len(guide.Sections))
	return nil
}

// validateFlags checks that at most one output format is chosen and that
// --input and --url are not both specified.
func validateFlags(cmd *cobra.Command) error {
	if flagInput != "" && cmd.Flags().Changed("url") {
		return fmt.Errorf("--input and --url are mutually exclusive")
	}

	formatCount := 0
	if flagMarkdown {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}
	if flagPDF {
		formatCount++
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	return nil
}

// selectSource picks the guide source: a local file when --input is given,
// otherwise the live site.
func selectSource() core.Source {
	if flagInput != "" {
		return fetch.NewFile(flagInput)
	}
	return fetch.NewHTTP(viper.GetString("url"))
}

// selectRenderer creates the appropriate Renderer based on flags.
// Markdown is the default: the generated guide is the product.
func selectRenderer() core.Renderer {
	switch {
	case flagJSON:
		return render.NewJSONRenderer()
	case flagPDF:
		return render.NewPDFRenderer()
	default:
		return render.NewMarkdownRenderer(viper.GetString("lang"))
	}
}
