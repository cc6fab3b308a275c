// Package cmd holds release metadata stamped into the binary at link time.
package cmd

// Overridden by the release build with
// -ldflags "-X fndeploy/cmd.Version=... -X fndeploy/cmd.Commit=... -X fndeploy/cmd.Date=...".
var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the short hash the binary was built from.
	Commit = "none"
	// Date is when the binary was built.
	Date = "unknown"
)
