package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vito/vast/pkg/doc"
	"github.com/vito/vast/pkg/ioctx"
)

// Config holds the application configuration
type Config struct {
	Debug   bool
	Dialect string
	Width   int
	Out     string
	Jobs    int
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "vast",
		Short: "Verilog and SystemVerilog generator",
		Long: `vast builds Verilog-2005 and SystemVerilog-2017 modules from
declarative TOML or YAML descriptions and prints them as source text.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.Dialect, "dialect", "", "Dialect for descriptions that do not name one (v05 or v17)")
	rootCmd.PersistentFlags().IntVarP(&cfg.Width, "width", "w", doc.DefaultWidth, "Maximum line width")

	rootCmd.AddCommand(renderCmd(&cfg))
	rootCmd.AddCommand(demoCmd(&cfg))

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs the default logger, colorized when stderr is a
// terminal.
func setupLogging(ctx context.Context, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	stderr := ioctx.StderrFromContext(ctx)
	var handler slog.Handler
	if ioctx.IsTerminal(stderr) {
		handler = tint.NewHandler(stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		})
	} else {
		handler = slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: level,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
