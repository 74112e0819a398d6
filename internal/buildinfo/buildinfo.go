// Package buildinfo holds the build metadata of the lazyscratch binary.
// The linker sets variables in cmd/lazyscratch and main forwards them with Set.
package buildinfo

import "runtime/debug"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Set stores the build metadata received from linker-injected variables.
func Set(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// Date returns the build date string.
func Date() string { return date }

// BuiltBy returns the build agent string.
func BuiltBy() string { return builtBy }

// Enrich fills the commit and builder from the embedded module build info
// when the linker left them unset. A "go install"ed binary also reports its
// module version instead of "dev".
func Enrich() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit == "none" {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commit = setting.Value
			case "vcs.time":
				if date == "unknown" {
					date = setting.Value
				}
			}
		}
	}
	if builtBy == "unknown" {
		builtBy = info.GoVersion
	}
}

// String returns a one-line summary used by --version.
func String() string {
	return version + " (" + shortCommit() + ")"
}

func shortCommit() string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
