package version

import (
	"fmt"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/tamzrod/input-remapper/internal/version.Version=v0.3.0 \
//	                   -X github.com/tamzrod/input-remapper/internal/version.Commit=abc123"
//
// If not set, Commit is read from the VCS stamp of the build.
var (
	// Version is the semantic version of the application
	Version = "dev"
	// Commit is the git commit hash
	Commit = ""
	// Date is the build date
	Date = "unknown"
)

func init() {
	if Commit == "" {
		Commit = commitFromBuildInfo()
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func commitFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}

// Short returns a compact build identifier for UI and logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Full returns the full version string including commit and date
func Full() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
