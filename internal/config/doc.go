// Package config defines the on-disk configuration document for fndeploy
// and its file I/O and validation.
//
// The document is a JSON file in the working directory (fndeploy.json by
// default) with two interpreted keys:
//
//	{
//	  "functionFolders": ["orders", "billing"],
//	  "flags": ["--region=us-central1", "--trigger-http"]
//	}
//
// Both sequences are ordered and must be non-empty at deploy time. The
// schema is open: unknown top-level keys are preserved on load and written
// back on save, but never interpreted.
//
// The document is created once by the interactive bootstrap, read once per
// run, and otherwise only edited manually by the user between runs.
package config
