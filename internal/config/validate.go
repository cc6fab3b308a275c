package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	fnerrors "fndeploy/internal/errors"
)

// ValidateFolders checks that folders is non-empty and that every entry
// resolves to an existing directory under baseDir. All offending entries
// are collected and reported together, so the user fixes them in one pass
// instead of a fix-one, rerun, fix-next loop.
func ValidateFolders(field string, folders []string, baseDir string) error {
	if len(folders) == 0 {
		return errors.Wrapf(fnerrors.ErrNoFolders, "%q is empty", field)
	}

	var missing []string
	for _, folder := range folders {
		info, err := os.Stat(filepath.Join(baseDir, folder))
		if err != nil || !info.IsDir() {
			missing = append(missing, folder)
		}
	}

	if len(missing) > 0 {
		noun := "folder does not exist"
		if len(missing) > 1 {
			noun = "folders do not exist"
		}
		return errors.Wrapf(fnerrors.ErrInvalidConfig,
			"%q: %d %s: %s", field, len(missing), noun, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateFlags checks that the flag list is non-empty. Flag contents are
// opaque pass-through arguments and are not inspected.
func ValidateFlags(flags []string) error {
	if len(flags) == 0 {
		return errors.Wrap(fnerrors.ErrNoFlags, `"flags" is empty`)
	}
	return nil
}
