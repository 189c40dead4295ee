package cli

import (
	"context"
	"fmt"

	githubcontroller "github.com/m-mizutani/autobump/pkg/controller/github"
	"github.com/m-mizutani/autobump/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// skipLevel is printed by classify when the push is a version bump commit
const skipLevel = "skip"

func cmdClassify() *cli.Command {
	var eventPath string

	return &cli.Command{
		Name:    "classify",
		Aliases: []string{"c"},
		Usage:   "Print the bump level inferred from the push event without changing anything",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "github-event-path",
				Usage:       "Path of the push event payload",
				Required:    true,
				Destination: &eventPath,
				Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			event, err := githubcontroller.LoadPushEvent(eventPath)
			if err != nil {
				return err
			}

			messages := event.Messages()
			level := skipLevel
			if !usecase.IsVersionBump(messages) {
				level = usecase.Classify(messages).String()
			}

			ctxlog.From(ctx).Debug("Classified push event", "level", level, "commit_count", len(messages))
			_, err = fmt.Fprintln(writerOf(c), level)
			return err
		},
	}
}
