package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "firecalc",
		Short: "FIRE portfolio simulator",
		Long: `firecalc simulates monthly contributions to an investment portfolio with
monthly compounding and reports when the portfolio reaches an
inflation-adjusted financial independence target (25x annual expenses).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd(), newFormatsCmd(), newInitConfigCmd())
	return root
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases := map[string][]string{}
			for _, a := range output.AvailableFormatAliases() {
				name := output.NormalizeFormatName(a)
				aliases[name] = append(aliases[name], a)
			}
			out := cmd.OutOrStdout()
			for _, name := range output.AvailableFormatterNames() {
				if len(aliases[name]) == 0 {
					fmt.Fprintln(out, name)
					continue
				}
				sort.Strings(aliases[name])
				fmt.Fprintf(out, "%s (aliases: %s)\n", name, strings.Join(aliases[name], ", "))
			}
			return nil
		},
	}
}

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "Write the default configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.SaveConfiguration(config.DefaultConfiguration(), path); err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
