package git

import (
	"context"
	"net/url"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/m-mizutani/autobump/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	runner interfaces.CommandRunner
}

// NewClient creates a GitClient that drives the git CLI through runner
func NewClient(runner interfaces.CommandRunner) interfaces.GitClient {
	return &client{runner: runner}
}

// RemoteURL builds an authenticated HTTPS remote for a GitHub repository (owner/name)
func RemoteURL(actor, token, repository string) string {
	u := &url.URL{
		Scheme: "https",
		User:   url.UserPassword(actor, token),
		Host:   "github.com",
		Path:   "/" + repository + ".git",
	}
	return u.String()
}

// EscapedPassword returns token as it appears inside RemoteURL's userinfo
func EscapedPassword(token string) string {
	return strings.TrimPrefix(url.UserPassword("", token).String(), ":")
}

// ConfigUser sets the commit identity of the repository
func (c *client) ConfigUser(ctx context.Context, dir, name, email string) error {
	if _, err := c.runner.Run(ctx, dir, "git", "config", "user.name", name); err != nil {
		return goerr.Wrap(err, "failed to set git user.name", goerr.V("name", name))
	}
	if _, err := c.runner.Run(ctx, dir, "git", "config", "user.email", email); err != nil {
		return goerr.Wrap(err, "failed to set git user.email", goerr.V("email", email))
	}
	return nil
}

// CommitAll commits all tracked changes and returns the new HEAD hash
func (c *client) CommitAll(ctx context.Context, dir, message string) (string, error) {
	if _, err := c.runner.Run(ctx, dir, "git", "commit", "-a", "-m", message); err != nil {
		return "", goerr.Wrap(err, "failed to commit changes", goerr.V("message", message))
	}

	hash, err := headHash(dir)
	if err != nil {
		// The commit exists; a missing hash only degrades reporting.
		ctxlog.From(ctx).Warn("Failed to resolve HEAD after commit", "error", err, "dir", dir)
		return "", nil
	}
	return hash, nil
}

// Checkout switches to branch
func (c *client) Checkout(ctx context.Context, dir, branch string) error {
	if _, err := c.runner.Run(ctx, dir, "git", "checkout", branch); err != nil {
		return goerr.Wrap(err, "failed to checkout branch", goerr.V("branch", branch))
	}
	return nil
}

// CreateTag creates a lightweight tag on HEAD
func (c *client) CreateTag(ctx context.Context, dir, tag string) error {
	if _, err := c.runner.Run(ctx, dir, "git", "tag", tag); err != nil {
		return goerr.Wrap(err, "failed to create tag", goerr.V("tag", tag))
	}
	return nil
}

// Push pushes commits with reachable tags, then all tags
func (c *client) Push(ctx context.Context, dir, remoteURL string) error {
	remote := redactURL(remoteURL)
	logger := ctxlog.From(ctx)

	logger.Info("Pushing commits and tags", "remote", remote)
	if _, err := c.runner.Run(ctx, dir, "git", "push", remoteURL, "--follow-tags"); err != nil {
		return goerr.Wrap(err, "failed to push commits", goerr.V("remote", remote))
	}

	if _, err := c.runner.Run(ctx, dir, "git", "push", remoteURL, "--tags"); err != nil {
		return goerr.Wrap(err, "failed to push tags", goerr.V("remote", remote))
	}
	return nil
}

func headHash(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open repository", goerr.V("dir", dir))
	}

	head, err := repo.Head()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve HEAD", goerr.V("dir", dir))
	}
	return head.Hash().String(), nil
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparsable remote]"
	}
	return u.Redacted()
}
