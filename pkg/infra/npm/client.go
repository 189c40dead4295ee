package npm

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/autobump/pkg/domain/interfaces"
	"github.com/m-mizutani/autobump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	runner interfaces.CommandRunner
}

// NewClient creates a PackageManager that drives the npm CLI through runner
func NewClient(runner interfaces.CommandRunner) interfaces.PackageManager {
	return &client{runner: runner}
}

// SetVersion forces the manifest version in dir. An unchanged version is not an error.
func (c *client) SetVersion(ctx context.Context, dir, version string) (string, error) {
	out, err := c.runner.Run(ctx, dir, "npm", "version", "--allow-same-version=true", "--git-tag-version=false", version)
	if err != nil {
		return "", goerr.Wrap(err, "failed to set package version", goerr.V("version", version), goerr.V("dir", dir))
	}
	return ParseVersion(out)
}

// Bump increments the manifest version by level and returns the new version
func (c *client) Bump(ctx context.Context, dir string, level model.BumpLevel) (string, error) {
	out, err := c.runner.Run(ctx, dir, "npm", "version", "--git-tag-version=false", level.String())
	if err != nil {
		return "", goerr.Wrap(err, "failed to bump package version", goerr.V("level", level), goerr.V("dir", dir))
	}
	return ParseVersion(out)
}

// ParseVersion extracts the version npm reports on its last output line.
// npm prints the version with its tag-version-prefix ("v" by default), which is dropped.
func ParseVersion(out string) (string, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return "", goerr.New("npm reported no version")
	}

	v, err := semver.NewVersion(last)
	if err != nil {
		return "", goerr.Wrap(err, "npm reported an invalid version", goerr.V("output", last))
	}
	return v.String(), nil
}
