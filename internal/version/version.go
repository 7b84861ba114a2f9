package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/mizuki0629/rrcm/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/mizuki0629/rrcm/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/mizuki0629/rrcm/internal/version.Date={{.Date}}
)
