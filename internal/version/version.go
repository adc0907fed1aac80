// Package version provides build version information and runtime metadata.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

var (
	// These are set via ldflags at build time
	Version = ""
	Commit  = ""

	once sync.Once
)

func ensureInitialized() {
	once.Do(func() {
		if Version == "" || Commit == "" {
			fromBuildInfo()
		}
		if Version == "" {
			Version = "dev"
		}
		if Commit == "" {
			Commit = "unknown"
		}
	})
}

func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && Commit == "" {
			if len(setting.Value) > 7 {
				Commit = setting.Value[:7]
			} else {
				Commit = setting.Value
			}
		}
	}
}

// Get returns the resolved version and commit.
func Get() (string, string) {
	ensureInitialized()
	return Version, Commit
}

// Info returns a human-readable version string.
func Info() string {
	ensureInitialized()
	return fmt.Sprintf("wakadash %s (commit: %s, %s/%s)",
		Version, Commit, runtime.GOOS, runtime.GOARCH)
}
