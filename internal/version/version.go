package version

// Version is the docnav version, overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/docnav/internal/version.Version=...".
var Version = "0.1.0-dev"
