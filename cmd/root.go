// Package cmd provides the root command and CLI setup for zdex.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"zdex.dev/pkg/zdex/internal/adapter"
	"zdex.dev/pkg/zdex/internal/controller"
	"zdex.dev/pkg/zdex/internal/domain"
	m "zdex.dev/pkg/zdex/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var scanner domain.Scanner
var resolver domain.VariableResolver
var workflow domain.Workflow
var ui controller.UI

// directoryFlag is the root directory for the legacy root invocation.
var directoryFlag string

// excludedPathsFlag and ignoredPathsFlag are aliases; their values are merged.
var excludedPathsFlag []string
var ignoredPathsFlag []string

var honorIgnoredFlag bool
var verboseFlag bool

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scanner = domain.NewScanner(fsAdapter)
	resolver = domain.NewVariableResolver(fsAdapter)
	workflow = domain.NewWorkflow(scanner, resolver, ui)
}

const pathsHelp = `Ignored paths are matched as plain prefixes of the scanned file paths,
so they should start with the directory argument:
  zdex list ./src -e ./src/vendor -e ./src/generated`

const rootLongDescription = `zdex finds every z-index declaration in a web codebase (TypeScript,
JavaScript, CSS, SCSS and Sass files), reports how many there are and which
values are in use, and resolves the Sass variables they reference.

Running zdex with --directory prints the same summary as "zdex total".

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "zdex",
		Short:        "Inventory z-index values in a web codebase",
		Long:         rootLongDescription,
		Version:      buildVersion(),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(directoryFlag) == "" {
				return missingDirectory(cmd)
			}

			return workflow.Total(cmd.Context(), totalArgs(m.Path(directoryFlag)))
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&directoryFlag, directoryFlagName, "d", "", "path to the codebase's root folder")

	cmd.PersistentFlags().StringSliceVarP(&excludedPathsFlag, excludedPathsFlagName, "e", nil, "paths that should be excluded (can be repeated)")
	cmd.PersistentFlags().StringSliceVarP(&ignoredPathsFlag, ignoredPathsFlagName, "i", nil, "paths that should be ignored, same as --excludedPaths")

	cmd.PersistentFlags().BoolVar(&honorIgnoredFlag, honorIgnoredFlagName, viper.GetBool(honorIgnoredConfigKey), "also skip excluded paths when resolving sass variable definitions")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(honorIgnoredFlagName), honorIgnoredConfigKey)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// missingDirectory prints the command help in place of an error message and
// still fails the command so the process exits 1.
func missingDirectory(cmd *cobra.Command) error {
	if err := cmd.Help(); err != nil {
		return err
	}

	cmd.SilenceErrors = true

	return domain.ErrMissingDirectory
}

// scanOptions assembles the scan settings shared by list, total and the
// legacy root invocation.
func scanOptions(root m.Path) domain.ScanOptions {
	return domain.ScanOptions{
		Root:               root,
		Ignored:            ignoredPaths(),
		HonorIgnored:       viper.GetBool(honorIgnoredConfigKey),
		Extensions:         viper.GetStringSlice(extensionsConfigKey),
		VariableExtensions: viper.GetStringSlice(variableExtensionsConfigKey),
	}
}

func totalArgs(root m.Path) domain.TotalArgs {
	return domain.TotalArgs{
		ScanOptions:   scanOptions(root),
		PreviewLength: viper.GetInt(previewLengthConfigKey),
	}
}

// ignoredPaths merges configured exclusions with both path flags, keeping the
// first occurrence of each entry.
func ignoredPaths() []m.Path {
	sources := [][]string{
		viper.GetStringSlice(excludeConfigKey),
		excludedPathsFlag,
		ignoredPathsFlag,
	}

	seen := make(map[string]bool)
	paths := make([]m.Path, 0)

	for _, source := range sources {
		for _, p := range source {
			p = strings.TrimSpace(p)
			if p == "" || seen[p] {
				continue
			}

			seen[p] = true
			paths = append(paths, m.Path(p))
		}
	}

	return paths
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}
