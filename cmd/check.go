// Package cmd — check command.
// Verifies the structure of a generated guide: heading and code-fence
// counts, fence language tags. Useful after a conversion to confirm the
// output matches the shape downstream consumers expect.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evaldasg/md--betterspecs-org/core/check"
)

var flagGuidelines int

var checkCmd = &cobra.Command{
	Use:   "check <guide.md>",
	Short: "Verify the structure of a generated guide document",
	Long: `Check parses a generated Markdown guide and reports its structure:
guideline headings, code blocks, and fence language tags.

Examples:
  betterspecs-md check betterspecs.md
  betterspecs-md check betterspecs.md --guidelines 40`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&flagGuidelines, "guidelines", 0, "Expected number of guideline headings (0 = don't check)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	report, err := check.Markdown(data)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%s\n", path)
	fmt.Fprintf(os.Stdout, "  Guidelines:  %d\n", report.Guidelines)
	fmt.Fprintf(os.Stdout, "  Headings:    %d\n", report.Headings)
	fmt.Fprintf(os.Stdout, "  Code blocks: %d\n", report.CodeBlocks)
	for lang, n := range report.Languages {
		fmt.Fprintf(os.Stdout, "    %s: %d\n", lang, n)
	}

	problems := report.Problems()
	if flagGuidelines > 0 && report.Guidelines != flagGuidelines {
		problems = append(problems,
			fmt.Sprintf("expected %d guideline headings, found %d", flagGuidelines, report.Guidelines))
	}

	if len(problems) > 0 {
		return fmt.Errorf("check failed:\n  %s", strings.Join(problems, "\n  "))
	}

	fmt.Fprintln(os.Stdout, "✓ Structure OK")
	return nil
}
