package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration zdex would run with, after merging defaults,
zdex.yaml, ZDEX_* environment variables and flags, as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
