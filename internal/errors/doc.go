// Package errors provides error handling conventions for the fndeploy CLI.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type carrying the process exit code, and the two exit codes the tool
// uses: ExitSuccess (0) and ExitFailure (1).
//
// Sentinel errors allow callers to check for specific conditions with
// [errors.Is]:
//
//	if errors.Is(err, fnerrors.ErrNoFolders) {
//	    // handle empty folder list
//	}
//
// [ExitError] supports unwrapping via [errors.As], so main can extract the
// exit code and an optional suggestion:
//
//	var exitErr *fnerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
