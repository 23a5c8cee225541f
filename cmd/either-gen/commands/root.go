// Package commands implements the either-gen command tree.
package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"either-generator/internal/analyze"
	"either-generator/internal/config"
	"either-generator/internal/diagnostic"
	"either-generator/internal/emit"
	"either-generator/internal/gen"
	"either-generator/internal/logger"
)

// app is the state shared by the commands of one execution.
type app struct {
	configPath string
	cfg        *config.Config
}

// NewRootCmd builds the either-gen command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "either-gen",
		Short: "Expand struct templates into Go declarations",
		Long: `either-gen expands struct templates into Go declarations.

A template is a struct type in a file built only with the template build tag
(default "eithertemplate"). Its choice fields use the either.Choice marker and
list their candidate types in an either:"..." struct tag; the
//either:template directive ending its doc comment lists the derivations to
generate. Each template file score.go gets a generated score_either.go next
to it.

Available commands:
  gen     - Write the generated file of every template file
  check   - Fail when a generated file is missing or out of date
  inspect - Print the expansion plan of a template file as YAML
  watch   - Regenerate template files as they change
  init    - Write a default .either-gen.yaml

Examples:
  either-gen gen ./...              # Generate every package of the module
  either-gen gen --dry-run ./pkg    # Print instead of writing
  either-gen check ./...            # Use in CI
  either-gen inspect pkg/score.go   # Show choice fields and derivations`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}

			a.cfg = cfg

			if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbose); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Configuration file (default: "+config.FileName+" found upwards)")
	flags.Bool("log-json", false, "Write logs as JSON lines")
	flags.BoolP("verbose", "v", false, "Enable debug logs")

	root.AddCommand(
		newGenCmd(a),
		newCheckCmd(a),
		newInspectCmd(a),
		newWatchCmd(a),
		newInitCmd(),
	)

	return root
}

// addGenerationFlags registers the flags overriding the generation settings.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().String("tag", config.DefaultBuildTag, "Build tag marking template files")
	cmd.Flags().String("suffix", config.DefaultOutputSuffix, "Suffix replacing .go in generated file names")
	cmd.Flags().String("prefix", config.DefaultPositionalPrefix, "Name prefix of positional fields")
}

func (a *app) analyzer() *analyze.Analyzer {
	return analyze.NewAnalyzer(a.cfg.BuildTag)
}

func (a *app) generator() *gen.Generator {
	return gen.NewGenerator(gen.Options{
		OutputSuffix: a.cfg.OutputSuffix,
		Emit:         emit.Options{PositionalPrefix: a.cfg.PositionalPrefix},
	})
}

// generate loads the template files of the package patterns and generates
// them in memory.
func (a *app) generate(patterns []string) ([]*gen.GeneratedFile, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	files, err := a.analyzer().Load(patterns...)
	if err != nil {
		return nil, err
	}

	return a.generator().GenerateAll(files)
}

// report prints the diagnostics of files to w and returns an error when any
// of them is an error.
func report(w io.Writer, files []*gen.GeneratedFile) error {
	var all diagnostic.Diagnostics

	for _, f := range files {
		all.Merge(f.Diagnostics)
	}

	for _, d := range all.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if all.HasErrors() {
		return errors.Newf("%d template error(s)", len(all.Errors))
	}

	return nil
}
