// File: cmd/watch.go
package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fowenati/xcreview/pkg/review"
)

// watchCmd keeps re-extracting a project's sources as they change.
var watchCmd = &cobra.Command{
	Use:   "watch <project>",
	Short: "Watch a project and append changed files to its report",
	Long: `Watch monitors the project's directory tree and, whenever source files
change, appends fresh records for them to the project's review report.
Changes are debounced so a burst of editor saves lands as one batch.
Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		watcher, err := review.NewWatcher(analyzer, args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return watcher.Run(ctx)
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
