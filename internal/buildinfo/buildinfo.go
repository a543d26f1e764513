package buildinfo

import "fmt"

// Set at link time, e.g. -ldflags "-X github.com/jhill1/circlekit/internal/buildinfo.Version=v0.1.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("circlekit %s (commit=%s, date=%s)", Version, Commit, Date)
}
