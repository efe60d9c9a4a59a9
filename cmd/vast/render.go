package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vito/vast/pkg/design"
	"github.com/vito/vast/pkg/ioctx"
	"golang.org/x/sync/errgroup"
)

func renderCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] file...",
		Short: "Render module descriptions",
		Long: `Render loads each TOML or YAML module description, validates it and
prints the generated module.

Defaults are read from the nearest vast.toml, searching upward from the
working directory until a .git directory. Flags override the file.`,
		Example: `  # Print a module to stdout
  vast render adder.toml

  # Render several descriptions as SystemVerilog into a directory
  vast render --dialect v17 --out rtl/ *.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			setupLogging(ctx, cfg.Debug)

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			project, err := design.FindProjectConfig(cwd)
			if err != nil {
				return err
			}
			if project != nil {
				slog.DebugContext(ctx, "loaded project config", "dir", project.Dir)
				applyProject(cmd, cfg, project)
			}
			return runRender(ctx, *cfg, args)
		},
	}

	cmd.Flags().StringVarP(&cfg.Out, "out", "o", "", "Write each module to <dir>/<name>.v or .sv instead of stdout")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", runtime.NumCPU(), "Number of descriptions rendered concurrently")

	return cmd
}

// applyProject fills in settings the user did not pass as flags.
func applyProject(cmd *cobra.Command, cfg *Config, project *design.ProjectConfig) {
	if project.Dialect != "" && !cmd.Flags().Changed("dialect") {
		cfg.Dialect = string(project.Dialect)
	}
	if project.Width > 0 && !cmd.Flags().Changed("width") {
		cfg.Width = project.Width
	}
	if project.Out != "" && !cmd.Flags().Changed("out") {
		cfg.Out = project.Out
	}
	if project.Jobs > 0 && !cmd.Flags().Changed("jobs") {
		cfg.Jobs = project.Jobs
	}
}

type rendered struct {
	name string
	ext  string
	text []byte
}

func runRender(ctx context.Context, cfg Config, files []string) error {
	fallback := design.V05
	if cfg.Dialect != "" {
		d, err := design.ParseDialect(cfg.Dialect)
		if err != nil {
			return err
		}
		fallback = d
	}
	if cfg.Width <= 0 {
		return errors.Errorf("width must be positive, got %d", cfg.Width)
	}

	results := make([]rendered, len(files))

	eg, gctx := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		eg.SetLimit(cfg.Jobs)
	}
	for i, file := range files {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := renderFile(gctx, file, fallback, cfg.Width)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if cfg.Out == "" {
		stdout := ioctx.StdoutFromContext(ctx)
		for _, r := range results {
			if _, err := stdout.Write(r.text); err != nil {
				return err
			}
		}
		return nil
	}

	if err := os.MkdirAll(cfg.Out, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	seen := map[string]string{}
	for i, r := range results {
		path := filepath.Join(cfg.Out, r.name+r.ext)
		if prev, ok := seen[path]; ok {
			return errors.Errorf("%s and %s both render module %s", prev, files[i], r.name)
		}
		seen[path] = files[i]
		if err := os.WriteFile(path, r.text, 0644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		slog.InfoContext(ctx, "wrote module", "module", r.name, "path", path)
	}
	return nil
}

func renderFile(ctx context.Context, file string, fallback design.Dialect, width int) (rendered, error) {
	slog.DebugContext(ctx, "loading description", "file", file)

	d, err := design.Load(file)
	if err != nil {
		return rendered{}, err
	}
	built, err := d.Build(fallback)
	if err != nil {
		return rendered{}, fmt.Errorf("%s: %w", file, err)
	}
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.DebugContext(ctx, "built module", "file", file, "tree", pretty.Sprint(built.Module))
	}

	var buf bytes.Buffer
	if err := built.Module.Doc().Render(&buf, width); err != nil {
		return rendered{}, errors.Wrapf(err, "render %s", file)
	}
	return rendered{
		name: built.Module.Name(),
		ext:  built.Dialect.Ext(),
		text: buf.Bytes(),
	}, nil
}
