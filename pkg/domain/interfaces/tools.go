package interfaces

import (
	"context"

	"github.com/m-mizutani/autobump/pkg/domain/model"
)

// CommandRunner executes an external command in the given directory and returns its stdout
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// GitClient defines git operations used by the bump pipeline.
// Every operation is scoped to an explicit repository directory.
type GitClient interface {
	// ConfigUser sets user.name and user.email for the repository
	ConfigUser(ctx context.Context, dir, name, email string) error

	// CommitAll commits all tracked changes with the given message and returns the new HEAD hash
	CommitAll(ctx context.Context, dir, message string) (string, error)

	// Checkout switches the working tree to a branch
	Checkout(ctx context.Context, dir, branch string) error

	// CreateTag creates a lightweight tag on HEAD
	CreateTag(ctx context.Context, dir, tag string) error

	// Push pushes the current branch with reachable tags, then all tags, to remoteURL
	Push(ctx context.Context, dir, remoteURL string) error
}

// PackageManager defines manifest version operations of the package manager CLI
type PackageManager interface {
	// SetVersion forces the manifest version in dir, allowing the same version
	SetVersion(ctx context.Context, dir, version string) (string, error)

	// Bump increments the manifest version in dir and returns the new version
	Bump(ctx context.Context, dir string, level model.BumpLevel) (string, error)
}

// ManifestReader reads the current version from a package manifest
type ManifestReader interface {
	ReadVersion(dir string) (string, error)
}
