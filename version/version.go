// Package version reports the SDK build version.
//
// Version is set at release build time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/wordcab-go/version.Version=1.2.0"
//
// Development builds fall back to VCS metadata embedded by the Go toolchain.
package version

import (
	"runtime/debug"
	"strings"
)

// Version is the release version, stamped at build time.
var Version = "dev"

// String returns the version, suffixed with the short commit hash when the
// build carries VCS metadata. Dirty working trees are marked.
func String() string {
	commit, dirty := vcsInfo()
	parts := []string{Version}
	if commit != "" {
		parts = append(parts, commit)
	}
	if dirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

// UserAgent returns the value sent in the SDK's User-Agent header.
func UserAgent() string {
	return "wordcab-go/" + Version
}

func vcsInfo() (commit string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return commit, dirty
}
