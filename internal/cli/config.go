package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"parcelable-generator/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create generator configuration",
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print the default configuration as YAML",
		Long: `Print the default configuration as YAML.

Use --write to save it, typically as parcelgen.yaml in the directory the
generator is run from. Values can also be overridden with PARCELGEN_*
environment variables, e.g. PARCELGEN_PREFERRED_LIST_TYPE=LinkedList.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()

			if write != "" {
				if err := config.WriteFile(cfg, write); err != nil {
					return err
				}

				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s written\n", write)

				return nil
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&write, "write", "w", "", "Write the configuration to this file")

	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a configuration file",
		Long: `Check a configuration file.

The file (default parcelgen.yaml) is parsed on top of the defaults and
validated: the enum pattern must compile and native type entries must be
complete and unique.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName + ".yaml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := config.ReadFile(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)

			return nil
		},
	}
}
