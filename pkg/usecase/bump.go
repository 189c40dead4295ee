package usecase

import (
	"context"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/autobump/pkg/domain/interfaces"
	"github.com/m-mizutani/autobump/pkg/domain/model"
	"github.com/m-mizutani/autobump/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// config holds the bump pipeline settings
type config struct {
	workspace  string
	ref        string
	tagPrefix  string
	subPackage string
	userName   string
	userEmail  string
	remoteURL  string
}

// Option is a functional option for the bump use case
type Option func(*config)

// WithWorkspace sets the repository checkout directory
func WithWorkspace(dir string) Option {
	return func(c *config) {
		c.workspace = dir
	}
}

// WithRef sets the ref that triggered the run. Falls back to the event ref when empty.
func WithRef(ref string) Option {
	return func(c *config) {
		c.ref = ref
	}
}

// WithTagPrefix sets the prefix of the published tag
func WithTagPrefix(prefix string) Option {
	return func(c *config) {
		c.tagPrefix = prefix
	}
}

// WithSubPackage sets a workspace-relative directory whose manifest is kept in lockstep
func WithSubPackage(path string) Option {
	return func(c *config) {
		c.subPackage = path
	}
}

// WithIdentity sets the commit author. An empty name uses types.DefaultGitUserName.
func WithIdentity(name, email string) Option {
	return func(c *config) {
		c.userName = name
		c.userEmail = email
	}
}

// WithRemoteURL sets the authenticated remote to push to
func WithRemoteURL(url string) Option {
	return func(c *config) {
		c.remoteURL = url
	}
}

type bumpUseCase struct {
	git      interfaces.GitClient
	pkg      interfaces.PackageManager
	manifest interfaces.ManifestReader
	cfg      *config
}

// NewBump creates the version bump use case
func NewBump(
	git interfaces.GitClient,
	pkg interfaces.PackageManager,
	manifest interfaces.ManifestReader,
	opts ...Option,
) interfaces.BumpUseCase {
	cfg := &config{
		workspace: ".",
		userName:  types.DefaultGitUserName,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.userName == "" {
		cfg.userName = types.DefaultGitUserName
	}

	return &bumpUseCase{
		git:      git,
		pkg:      pkg,
		manifest: manifest,
		cfg:      cfg,
	}
}

// Run executes the pipeline and stops at the first failing step
func (uc *bumpUseCase) Run(ctx context.Context, event *model.PushEvent) (*model.BumpResult, error) {
	logger := ctxlog.From(ctx)
	messages := event.Messages()

	if IsVersionBump(messages) {
		logger.Info("Triggered by a version bump commit, skipping")
		return &model.BumpResult{Skipped: true}, nil
	}

	if uc.cfg.userEmail == "" {
		return nil, goerr.New("commit author email is required")
	}

	result := &model.BumpResult{Level: Classify(messages)}

	rawRef := uc.cfg.ref
	if rawRef == "" && event != nil {
		rawRef = event.Ref
	}
	ref, err := model.ParseRef(rawRef)
	if err != nil {
		return nil, err
	}
	result.Branch = ref.Name

	current, err := uc.manifest.ReadVersion(uc.cfg.workspace)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read current version")
	}
	result.CurrentVersion = current

	logger.Info("Starting version bump",
		"level", result.Level,
		"current", current,
		"branch", ref.Name,
		"commit_count", len(messages),
	)

	if err := uc.git.ConfigUser(ctx, uc.cfg.workspace, uc.cfg.userName, uc.cfg.userEmail); err != nil {
		return nil, err
	}

	// Detached checkout first: later steps of the workflow read this manifest.
	newVersion, err := uc.updateVersion(ctx, uc.cfg.workspace, current, result.Level)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update version on detached checkout")
	}
	result.NewVersion = newVersion

	if uc.cfg.subPackage != "" {
		if err := uc.updateSubPackage(ctx, newVersion); err != nil {
			return nil, err
		}
	}

	hash, err := uc.git.CommitAll(ctx, uc.cfg.workspace, BumpCommitMessage(newVersion))
	if err != nil {
		return nil, err
	}
	result.CommitHash = hash
	logger.Info("Committed version bump", "version", newVersion, "commit", hash)

	if err := uc.git.Checkout(ctx, uc.cfg.workspace, ref.Name); err != nil {
		return nil, err
	}

	branchVersion, err := uc.updateVersion(ctx, uc.cfg.workspace, current, result.Level)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update version on branch", goerr.V("branch", ref.Name))
	}
	result.BranchVersion = branchVersion
	if branchVersion != newVersion {
		logger.Warn("Branch version differs from detached checkout",
			"branch_version", branchVersion,
			"detached_version", newVersion,
		)
	}

	result.Tag = model.Tag(uc.cfg.tagPrefix, branchVersion)
	if err := uc.publish(ctx, result.Tag); err != nil {
		return nil, err
	}

	logger.Info("Version bumped",
		"current", current,
		"new", newVersion,
		"tag", result.Tag,
	)
	return result, nil
}

// updateVersion resets dir's manifest to current and bumps it by level
func (uc *bumpUseCase) updateVersion(ctx context.Context, dir, current string, level model.BumpLevel) (string, error) {
	logger := ctxlog.From(ctx)

	if _, err := uc.pkg.SetVersion(ctx, dir, current); err != nil {
		return "", err
	}
	logger.Debug("Bumping version", "dir", dir, "current", current, "level", level)

	next, err := uc.pkg.Bump(ctx, dir, level)
	if err != nil {
		return "", err
	}

	if err := verifyIncrease(current, next); err != nil {
		return "", err
	}
	return next, nil
}

// updateSubPackage forces the sub-package manifest to the computed version
func (uc *bumpUseCase) updateSubPackage(ctx context.Context, version string) error {
	dir := filepath.Join(uc.cfg.workspace, uc.cfg.subPackage)
	logger := ctxlog.From(ctx)

	logger.Info("Updating sub package", "path", uc.cfg.subPackage, "version", version)
	updated, err := uc.pkg.SetVersion(ctx, dir, version)
	if err != nil {
		return goerr.Wrap(err, "failed to update sub package", goerr.V("path", uc.cfg.subPackage))
	}
	logger.Info("Updated sub package", "path", uc.cfg.subPackage, "version", updated)
	return nil
}

// publish tags HEAD and pushes commits and tags
func (uc *bumpUseCase) publish(ctx context.Context, tag string) error {
	if err := uc.git.CreateTag(ctx, uc.cfg.workspace, tag); err != nil {
		return err
	}
	if err := uc.git.Push(ctx, uc.cfg.workspace, uc.cfg.remoteURL); err != nil {
		return err
	}
	return nil
}

// verifyIncrease enforces that next is strictly greater than current
func verifyIncrease(current, next string) error {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return goerr.Wrap(err, "current version is not semver", goerr.V("version", current))
	}
	nv, err := semver.NewVersion(next)
	if err != nil {
		return goerr.Wrap(err, "new version is not semver", goerr.V("version", next))
	}
	if !nv.GreaterThan(cur) {
		return goerr.New("version did not increase", goerr.V("current", current), goerr.V("new", next))
	}
	return nil
}
