// Package cli implements the parcelable-generator command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"parcelable-generator/internal/config"
	"parcelable-generator/internal/decl"
	"parcelable-generator/internal/gen"
)

type rootOptions struct {
	output      string
	configPath  string
	listType    string
	enumPattern string
	noDefault   bool
	strict      bool
	verbose     bool
}

// NewRootCommand creates the root command. Without subcommand it reads Java
// class declarations from the given files, or stdin, and prints the
// Parcelable implementation.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "parcelable-generator [files...]",
		Short: "Generate Android Parcelable boilerplate for a Java class",
		Long: `Generate Android Parcelable boilerplate for a Java class.

Paste or pipe a Java class into stdin (or pass files) and the generated
constructor, writeToParcel, describeContents and CREATOR are printed.
Only single line "public|private Type name;" fields are recognized.
Enums are detected by naming convention (type names ending in "Type" by
default); every other unknown type is treated as Parcelable.

Examples:
  parcelable-generator < Order.java
  parcelable-generator Order.java -o build/Order.parcel.java
  parcelable-generator --no-default --strict Order.java`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Write generated code to this file instead of stdout")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default ./parcelgen.yaml if present)")
	flags.StringVar(&opts.listType, "list-type", "", "Concrete class instantiated for List fields")
	flags.StringVar(&opts.enumPattern, "enum-pattern", "", "Regular expression detecting enum type names")
	flags.BoolVar(&opts.noDefault, "no-default", false, "Skip unknown types instead of treating them as Parcelable")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with an error when a field was skipped")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log adapter decisions to stderr")

	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewTypesCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)

		return err
	}

	return nil
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := newLogger(opts.verbose)
	defer func() { _ = logger.Sync() }()

	d, err := readDeclaration(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	logger.Debug("declaration scanned",
		zap.String("class", d.ClassName),
		zap.Int("fields", len(d.Fields)))

	g, err := gen.NewConfigured(cfg, gen.WithLogger(logger))
	if err != nil {
		return err
	}

	out, err := g.GenerateDeclaration(d)
	if err != nil {
		return err
	}

	printDiagnostics(cmd.ErrOrStderr(), out.Diagnostics)

	if opts.output != "" {
		if err := gen.WriteFile(out, opts.output); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✓ %s written\n", opts.output)
	} else if _, err := out.WriteTo(cmd.OutOrStdout()); err != nil {
		return err
	}

	if opts.strict {
		if err := out.Diagnostics.Strict(); err != nil {
			return fmt.Errorf("strict mode: %w", err)
		}
	}

	return nil
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.listType != "" {
		cfg.PreferredListType = opts.listType
	}

	if opts.enumPattern != "" {
		cfg.EnumPattern = opts.enumPattern
	}

	if opts.noDefault {
		cfg.UseDefaultAdapter = false
	}

	return cfg, nil
}

// readDeclaration scans stdin, or the concatenation of files in order. Each
// file is terminated by a newline so its last line never joins the first
// line of the next file.
func readDeclaration(stdin io.Reader, files []string) (*decl.Declaration, error) {
	if len(files) == 0 {
		return decl.Scan(stdin)
	}

	readers := make([]io.Reader, 0, 2*len(files))

	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer f.Close()

		readers = append(readers, f, strings.NewReader("\n"))
	}

	return decl.Scan(io.MultiReader(readers...))
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
