package site

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	rerrors "github.com/FitzroyWoodruff/rustic/internal/errors"
)

// CopyStatic copies the static asset directory verbatim into the output root,
// preserving the directory name (static/style.css lands at
// <output>/static/style.css). It returns the number of files copied.
//
// A missing static directory is not an error; sites without assets are fine.
func CopyStatic(staticDir, outputRoot string) (int, error) {
	info, err := os.Stat(staticDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, rerrors.FileSystemError("stat", staticDir, err)
	}
	if !info.IsDir() {
		return 0, rerrors.New(rerrors.CategoryFileSystem, rerrors.SeverityFatal, "static path is not a directory").
			WithContext("path", staticDir)
	}

	dest := filepath.Join(outputRoot, filepath.Base(staticDir))
	copied := 0

	err = filepath.WalkDir(staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, rerrors.FileSystemError("copy", staticDir, err)
	}

	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
