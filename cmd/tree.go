// File: cmd/tree.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// treeCmd prints one project's source layout without writing anything.
var treeCmd = &cobra.Command{
	Use:   "tree <project>",
	Short: "Show a project's source files as a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		rendered, err := analyzer.Tree(args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(treeCmd)
}
