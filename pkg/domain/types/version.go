package types

// Version is the autobump release version, overwritten by -ldflags at build time
var Version = "dev"

// DefaultGitUserName is used as commit author name when GITHUB_USER is not set
const DefaultGitUserName = "Automated Version Bump"
