package version

// Build information set by ldflags; Commit and Date stay empty in dev builds
var (
	Version = "dev" // Set by goreleaser: -X github.com/arthur-debert/dotfiles/internal/version.Version={{.Version}}
	Commit  = ""    // Set by goreleaser: -X github.com/arthur-debert/dotfiles/internal/version.Commit={{.Commit}}
	Date    = ""    // Set by goreleaser: -X github.com/arthur-debert/dotfiles/internal/version.Date={{.Date}}
)
