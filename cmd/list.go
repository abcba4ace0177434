package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zdex.dev/pkg/zdex/internal/domain"
	m "zdex.dev/pkg/zdex/internal/model"
)

const listLongDescription = `Display every z-index in the codebase grouped by value, followed by the
sass variables used as z-index values with their resolved definitions.

Groups are sorted by number of occurrences (--sort total) or by value
(--sort zIndex), highest first.

` + pathsHelp

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	var sortFlag string

	cmd := &cobra.Command{
		Use:   "list <directory>",
		Short: "List z-index values grouped by value, with their files",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return missingDirectory(cmd)
			}

			sortKey, err := m.ParseSortKey(viper.GetString(sortConfigKey))
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				ScanOptions: scanOptions(m.Path(args[0])),
				Sort:        sortKey,
			})
		},
	}

	cmd.Flags().StringVarP(&sortFlag, sortFlagName, "s", defaultSort, "sort groups by total or zIndex")
	bindFlagToConfig(cmd.Flags().Lookup(sortFlagName), sortConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
