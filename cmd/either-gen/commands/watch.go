package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"either-generator/internal/config"
	"either-generator/internal/gen"
	"either-generator/internal/logger"
	"either-generator/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [packages...]",
		Short: "Regenerate template files as they change",
		Long: `Generate every template file of the given packages (default "."), then
regenerate a template file whenever it is written. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if len(args) == 0 {
				args = []string{"."}
			}

			an := a.analyzer()
			g := a.generator()
			log := logger.ComponentLogger("watch")

			infos, err := an.LoadPackages(args...)
			if err != nil {
				return err
			}

			var dirs []string
			for _, info := range infos {
				if info.Dir != "" {
					dirs = append(dirs, info.Dir)
				}
			}

			slices.Sort(dirs)
			dirs = slices.Compact(dirs)

			regenerate := func(_ context.Context, paths []string) error {
				files := make([]*gen.GeneratedFile, 0, len(paths))

				for _, path := range paths {
					tf, err := an.ParseFile(path)
					if err != nil {
						return err
					}

					gf, err := g.Generate(tf)
					if err != nil {
						return err
					}

					files = append(files, gf)
				}

				if err := gen.WriteFiles(files); err != nil {
					return err
				}

				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", f.Path)
				}

				return report(cmd.ErrOrStderr(), files)
			}

			var initial []string
			for _, info := range infos {
				initial = append(initial, info.Templates...)
			}

			if err := regenerate(ctx, initial); err != nil {
				log.Warnw("initial generation incomplete", logger.FieldError, err)
			}

			isTemplate := func(path string) bool {
				if !strings.HasSuffix(path, ".go") {
					return false
				}

				ok, err := an.IsTemplateFile(path)

				return err == nil && ok
			}

			w, err := watch.New(dirs, a.cfg.Watch.Debounce, isTemplate, regenerate)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %d package(s), press Ctrl+C to stop\n", len(dirs))

			return w.Run(ctx)
		},
	}

	addGenerationFlags(cmd)
	cmd.Flags().Duration("debounce", config.DefaultDebounce, "Quiet period before regenerating")

	return cmd
}
