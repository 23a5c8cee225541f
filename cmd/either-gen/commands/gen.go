package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"either-generator/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Write the generated file of every template file",
		Long: `Expand every template file of the given packages (default ".") and write
the generated files next to them. Templates that fail to expand are reported
and replaced by diagnostic comments in the output; the command then exits
with an error after writing every file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.generate(args)
			if err != nil {
				return err
			}

			if dryRun {
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "// File: %s\n%s", f.Path, f.Content)
				}
			} else {
				if err := gen.WriteFiles(files); err != nil {
					return err
				}

				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", f.Path)
				}
			}

			return report(cmd.ErrOrStderr(), files)
		},
	}

	addGenerationFlags(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generated files instead of writing them")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Fail when a generated file is missing or out of date",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.generate(args)
			if err != nil {
				return err
			}

			stale, err := gen.Check(files)
			if err != nil {
				return err
			}

			for _, path := range stale {
				fmt.Fprintf(cmd.OutOrStdout(), "✗ %s is out of date\n", path)
			}

			if err := report(cmd.ErrOrStderr(), files); err != nil {
				return err
			}

			if len(stale) > 0 {
				return fmt.Errorf("%d generated file(s) out of date, run either-gen gen", len(stale))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %d generated file(s) up to date\n", len(files))

			return nil
		},
	}

	addGenerationFlags(cmd)

	return cmd
}
