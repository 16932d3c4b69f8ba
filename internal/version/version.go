// Package version reports the b3hash version.
package version

import "runtime/debug"

var (
	// Version is the released version, set at build time with
	//
	//	-ldflags "-X github.com/shizhMSFT/b3hash/internal/version.Version=v1.2.3"
	Version = ""

	// BuildMetadata is appended to a version that is not injected.
	BuildMetadata = "unreleased"

	// GitCommit is the source revision, set at build time.
	GitCommit = ""
)

// GetVersion returns the injected version, or the module version from the
// build info, or "devel".
func GetVersion() string {
	version := Version
	commit := GitCommit
	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		if commit == "" {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
					commit = setting.Value[:7]
				}
			}
		}
	}
	if version == "" {
		version = "devel"
		if BuildMetadata != "" {
			version += "+" + BuildMetadata
		}
	}
	if commit != "" {
		version += " (" + commit + ")"
	}
	return version
}
