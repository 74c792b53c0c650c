// Package version reports which build of timeclock is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/example/timeclock/internal/version.Commit=...".
var (
	Commit    = ""
	BuildTime = ""
)

// String returns "timeclock <commit> (built <time>)". Without ldflags the
// VCS stamp embedded by the go tool is used, and "dev" when there is none.
func String() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := fromBuildInfo()
		if commit == "" {
			commit = vcsCommit
		}
		if built == "" {
			built = vcsTime
		}
	}
	return format(commit, built)
}

func format(commit, built string) string {
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		commit = "dev"
	}
	if built == "" {
		return "timeclock " + commit
	}
	return fmt.Sprintf("timeclock %s (built %s)", commit, built)
}

func fromBuildInfo() (commit, built string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			built = s.Value
		}
	}
	return commit, built
}
