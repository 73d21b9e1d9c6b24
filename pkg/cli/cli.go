package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/cli/config"
	"github.com/m-mizutani/tsumugi/pkg/cli/tools"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
	"github.com/urfave/cli/v3"
)

// Run is the entry point of the tsumugi command
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		closeLog  = func() {}
	)

	app := &cli.Command{
		Name:  "tsumugi",
		Usage: "Create Notion databases and pages from Slack",
		Flags: loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closeLog = closer

			ctx = ctxlog.With(ctx, logger)
			logger.Debug("logger configured", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			closeLog()
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			{
				Name:    "tool",
				Aliases: []string{"t"},
				Usage:   "Utility tools",
				Commands: []*cli.Command{
					tools.CmdGenerateConfig(),
				},
			},
		},
	}

	if err := app.Run(ctx, args); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "tsumugi failed"))
		return err
	}

	return nil
}
