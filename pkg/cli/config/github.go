package config

import (
	"github.com/m-mizutani/autobump/pkg/infra/git"
	"github.com/urfave/cli/v3"
)

// GitHub holds the GitHub Actions runtime configuration
type GitHub struct {
	User       string
	Email      string
	Ref        string
	Workspace  string
	Actor      string
	Token      string `masq:"secret"`
	Repository string
	EventPath  string
	OutputPath string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-user",
			Usage:       "Commit author name (default: Automated Version Bump)",
			Destination: &c.User,
			Sources:     cli.EnvVars("GITHUB_USER"),
		},
		&cli.StringFlag{
			Name:        "github-email",
			Usage:       "Commit author email",
			Destination: &c.Email,
			Sources:     cli.EnvVars("GITHUB_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "github-ref",
			Usage:       "Ref that triggered the run (refs/<kind>/<name>)",
			Destination: &c.Ref,
			Sources:     cli.EnvVars("GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "github-workspace",
			Usage:       "Repository checkout directory",
			Value:       ".",
			Destination: &c.Workspace,
			Sources:     cli.EnvVars("GITHUB_WORKSPACE"),
		},
		&cli.StringFlag{
			Name:        "github-actor",
			Usage:       "User name embedded in the push URL",
			Destination: &c.Actor,
			Sources:     cli.EnvVars("GITHUB_ACTOR"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "Token embedded in the push URL",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-repository",
			Usage:       "Repository to push to (owner/name)",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-event-path",
			Usage:       "Path of the push event payload",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "github-output",
			Usage:       "GitHub Actions output file",
			Destination: &c.OutputPath,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
	}
}

// RemoteURL returns the authenticated push URL
func (c *GitHub) RemoteURL() string {
	return git.RemoteURL(c.Actor, c.Token, c.Repository)
}
