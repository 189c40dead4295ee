package usecase

import (
	"strings"

	"github.com/m-mizutani/autobump/pkg/domain/model"
)

// BumpCommitMarker identifies commits created by autobump itself
const BumpCommitMarker = "version bump to"

// Classify infers the bump level from commit messages.
// Major triggers are case-sensitive; minor triggers are matched on the lower-cased message.
func Classify(messages []string) model.BumpLevel {
	for _, msg := range messages {
		if strings.Contains(msg, "BREAKING CHANGE") || strings.Contains(msg, "major") {
			return model.BumpMajor
		}
	}

	for _, msg := range messages {
		lower := strings.ToLower(msg)
		if strings.HasPrefix(lower, "feat") || strings.Contains(lower, "minor") {
			return model.BumpMinor
		}
	}

	return model.BumpPatch
}

// IsVersionBump reports whether any message is a version bump commit
func IsVersionBump(messages []string) bool {
	for _, msg := range messages {
		if strings.Contains(strings.ToLower(msg), BumpCommitMarker) {
			return true
		}
	}
	return false
}

// BumpCommitMessage is the commit message used for the version bump commit
func BumpCommitMessage(version string) string {
	return "ci: " + BumpCommitMarker + " " + version
}
