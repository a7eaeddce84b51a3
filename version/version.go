// Package version provides build version information embedding.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns version information, filling gaps from the embedded
// build info when ldflags were not provided.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = shorten(setting.Value)
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}
	return info
}

// String returns a single-line rendering of the version info.
func (i Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s += fmt.Sprintf(" (%s)", i.GitCommit)
	}
	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}
	if i.GoVersion != "" {
		s += " with " + i.GoVersion
	}
	return s
}

func shorten(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
