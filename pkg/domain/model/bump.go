package model

// BumpLevel is a semantic-version increment level
type BumpLevel string

const (
	BumpMajor BumpLevel = "major"
	BumpMinor BumpLevel = "minor"
	BumpPatch BumpLevel = "patch"
)

func (x BumpLevel) String() string { return string(x) }

// BumpResult summarizes one autobump run
type BumpResult struct {
	Skipped        bool      // Bump guard fired; nothing was changed
	Level          BumpLevel // Inferred bump level
	CurrentVersion string    // Manifest version read at start
	NewVersion     string    // Version committed on the detached checkout
	BranchVersion  string    // Version written on the originating branch
	Branch         string    // Originating branch name
	Tag            string    // Published tag
	CommitHash     string    // Hash of the version bump commit
}

// Tag composes the published tag name from the configured prefix and a version
func Tag(prefix, version string) string {
	return prefix + version
}
