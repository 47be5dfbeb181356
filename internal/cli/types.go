package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"parcelable-generator/internal/adapter"
	"parcelable-generator/internal/gen"
)

// NewTypesCommand creates the types command listing the adapters in match
// order.
func NewTypesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the registered adapters in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(&rootOptions{configPath: configPath})
			if err != nil {
				return err
			}

			registry, err := gen.StandardRegistry(cfg)
			if err != nil {
				return err
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			w := cmd.OutOrStdout()

			titleColor.Fprintln(w, "Adapters:")

			for i, a := range registry.Adapters() {
				fmt.Fprintf(w, "  %2d. %s\n", i+1, adapter.Describe(a))
			}

			titleColor.Fprint(w, "Default: ")

			if fallback := registry.Fallback(); fallback != nil {
				fmt.Fprintln(w, adapter.Describe(fallback))
			} else {
				fmt.Fprintln(w, "none")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}
