package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/autobump/pkg/cli/config"
	githubcontroller "github.com/m-mizutani/autobump/pkg/controller/github"
	"github.com/m-mizutani/autobump/pkg/infra/actions"
	"github.com/m-mizutani/autobump/pkg/infra/command"
	"github.com/m-mizutani/autobump/pkg/infra/git"
	"github.com/m-mizutani/autobump/pkg/infra/manifest"
	"github.com/m-mizutani/autobump/pkg/infra/npm"
	"github.com/m-mizutani/autobump/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	msgSkipped = "No action necessary!"
	msgBumped  = "Version bumped!"
	msgFailed  = "Failed to bump version"
)

func cmdBump(sentryCfg *config.Sentry) *cli.Command {
	var (
		githubCfg config.GitHub
		actionCfg config.Action
	)

	flags := append(githubCfg.Flags(), actionCfg.Flags()...)

	return &cli.Command{
		Name:    "bump",
		Aliases: []string{"b"},
		Usage:   "Bump the package version, commit, tag and push",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Debug("Loaded configuration",
				slog.Any("github", githubCfg),
				slog.Any("action", actionCfg),
			)

			w := writerOf(c)
			if err := runBump(ctx, w, &githubCfg, &actionCfg); err != nil {
				color.New(color.FgRed).Fprintln(w, msgFailed)
				sentryCfg.Report(err)
				return err
			}
			return nil
		},
	}
}

func runBump(ctx context.Context, w io.Writer, githubCfg *config.GitHub, actionCfg *config.Action) error {
	if err := actionCfg.Validate(); err != nil {
		return err
	}
	if githubCfg.EventPath == "" {
		return goerr.New("event payload path is required (GITHUB_EVENT_PATH)")
	}

	event, err := githubcontroller.LoadPushEvent(githubCfg.EventPath)
	if err != nil {
		return err
	}

	runner := command.NewRunner(
		command.WithSecret(githubCfg.Token),
		command.WithSecret(git.EscapedPassword(githubCfg.Token)),
	)
	uc := usecase.NewBump(
		git.NewClient(runner),
		npm.NewClient(runner),
		manifest.NewReader(),
		usecase.WithWorkspace(githubCfg.Workspace),
		usecase.WithRef(githubCfg.Ref),
		usecase.WithTagPrefix(actionCfg.TagPrefix),
		usecase.WithSubPackage(actionCfg.SubPackage),
		usecase.WithIdentity(githubCfg.User, githubCfg.Email),
		usecase.WithRemoteURL(githubCfg.RemoteURL()),
	)

	result, err := uc.Run(ctx, event)
	if err != nil {
		return goerr.Wrap(err, "version bump failed")
	}

	if result.Skipped {
		color.New(color.FgYellow).Fprintln(w, msgSkipped)
		return nil
	}

	if err := actions.WriteOutputs(githubCfg.OutputPath, map[string]string{
		"newTag":     result.Tag,
		"newVersion": result.NewVersion,
	}, "newTag", "newVersion"); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintln(w, msgBumped)
	return nil
}

func writerOf(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
