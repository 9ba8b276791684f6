// File: cmd/analyze.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fowenati/xcreview/pkg/review"
)

var tuiFlag bool

// analyzeCmd runs the extraction pipeline for one project.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [project]",
	Short: "Extract a project's source code into its review report",
	Long: `Analyze lists the projects under the base folder, asks which one to
process (unless a project name is given), strips comment lines from its
source files, and appends each file as a categorized record to
<base>/<project>/<project>_code_review.txt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []review.Option
		if tuiFlag {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("--tui requires an interactive terminal")
			}
			opts = append(opts, review.WithChooser(review.TUIChooser{}))
		}

		analyzer, err := newAnalyzer(opts...)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			return analyzer.AnalyzeProject(args[0])
		}
		return analyzer.Run()
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&tuiFlag, "tui", false, "pick the project from an interactive list instead of the numbered prompt")

	RootCmd.AddCommand(analyzeCmd)
}
