package cmd

import (
	"github.com/spf13/cobra"

	m "zdex.dev/pkg/zdex/internal/model"
)

const totalLongDescription = `Display how many numeric z-indexes, unique numeric z-indexes and sass
variables the codebase contains, with a preview of the values.

` + pathsHelp

// totalCmd represents the total command.
var totalCmd = newTotalCmd()

func newTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total <directory>",
		Short: "Count z-index values and sass variables",
		Long:  totalLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return missingDirectory(cmd)
			}

			return workflow.Total(cmd.Context(), totalArgs(m.Path(args[0])))
		},
	}
}

func init() {
	rootCmd.AddCommand(totalCmd)
}
