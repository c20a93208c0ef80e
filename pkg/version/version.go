package version

import "fmt"

// Build variables injected with -ldflags, for example:
// -X 'github.com/compozy/capnames/pkg/version.Version=v1.0.0'
// -X 'github.com/compozy/capnames/pkg/version.CommitHash=abc123'
// -X 'github.com/compozy/capnames/pkg/version.BuildDate=2024-01-01T00:00:00Z'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Info is the build information printed by `capnames version`.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("capnames %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildDate)
}
