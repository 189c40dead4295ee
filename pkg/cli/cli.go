package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/autobump/pkg/cli/config"
	"github.com/m-mizutani/autobump/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

// run runs the CLI application and writes status lines to w
func run(ctx context.Context, args []string, w io.Writer) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		envFile   string
		logger    *slog.Logger
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "Load environment variables from a dotenv file before reading the configuration",
			Destination: &envFile,
			Sources:     cli.EnvVars("AUTOBUMP_ENV_FILE"),
		},
	}
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:           "autobump",
		Usage:          "Bump package version from commit messages and publish a tag",
		Version:        types.Version,
		Writer:         w,
		Flags:          flags,
		DefaultCommand: "bump",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Subcommand flags read the environment after this hook runs.
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return nil, goerr.Wrap(err, "failed to load env file", goerr.V("path", envFile))
				}
			}

			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With("run_id", uuid.NewString())

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdBump(&sentryCfg),
			cmdClassify(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
