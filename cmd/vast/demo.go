package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vito/vast/pkg/design"
	"github.com/vito/vast/pkg/doc"
	"github.com/vito/vast/pkg/ioctx"
	"github.com/vito/vast/pkg/v05"
	"github.com/vito/vast/pkg/v17"
)

func demoCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a small example module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			setupLogging(ctx, cfg.Debug)
			return runDemo(ctx, *cfg)
		},
	}
}

type demoModule interface {
	AddParamUint(name string, value uint32)
	AddInput(name string, width uint64)
	Doc() *doc.Doc
}

func runDemo(ctx context.Context, cfg Config) error {
	dialect := design.V05
	if cfg.Dialect != "" {
		d, err := design.ParseDialect(cfg.Dialect)
		if err != nil {
			return err
		}
		dialect = d
	}
	if cfg.Width <= 0 {
		cfg.Width = doc.DefaultWidth
	}

	var m demoModule = v05.NewModule("foo")
	if dialect == design.V17 {
		m = v17.NewModule("foo")
	}
	m.AddParamUint("width", 32)
	m.AddInput("data", 4)

	return m.Doc().Render(ioctx.StdoutFromContext(ctx), cfg.Width)
}
