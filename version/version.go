package version

// Version is set at build time via -ldflags "-X github.com/dadrus/tst/version.Version=...".
var Version = "master" //nolint:gochecknoglobals
