// Package buildinfo exposes build properties injected via ldflags:
//
//	go build -ldflags "-X github.com/Dante-danite/hw-python-oop/buildinfo.version=v1.0.0" ./cmd/fittracker
package buildinfo

import "fmt"

// Properties holds build-time properties.
type Properties struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// Get returns the current build properties.
func Get() Properties {
	return Properties{
		Version:   version,
		BuildTime: buildTime,
		GitCommit: gitCommit,
	}
}

func (p Properties) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", p.Version, p.BuildTime, p.GitCommit)
}
