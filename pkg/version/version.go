package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information. Populated at build-time via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// resolvedVersion falls back to the module version recorded by
// `go install module@version` when no ldflags were given.
func resolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetVersion returns a one-line version string:
// qrkeys v0.1.0 (abc1234 2025-11-14T21:51:00Z)
func GetVersion(name string) string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s %s (%s%s %s)", name, resolvedVersion(), GitCommit, dirty, BuildTime)
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() string {
	dirty := "clean"
	if GitDirty == "true" {
		dirty = "dirty"
	}

	return fmt.Sprintf(`Version:    %s
Git commit: %s (%s)
Built:      %s
Go version: %s`,
		resolvedVersion(),
		GitCommit,
		dirty,
		BuildTime,
		runtime.Version(),
	)
}
