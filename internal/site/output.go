package site

import (
	"os"

	rerrors "github.com/FitzroyWoodruff/rustic/internal/errors"
)

// CleanOutput removes and recreates the output directory so every build
// starts from an empty tree.
func CleanOutput(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return rerrors.FileSystemError("remove", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return rerrors.FileSystemError("mkdir", dir, err)
	}
	return nil
}
