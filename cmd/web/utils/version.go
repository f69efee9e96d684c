package utils

import (
	"runtime/debug"
)

// Version is the VCS revision the binary was built from, or "dev".
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "dev"
}()

// ShortVersion trims a revision hash to the usual 7 characters.
func ShortVersion() string {
	if len(Version) > 7 {
		return Version[:7]
	}
	return Version
}
