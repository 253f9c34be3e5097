// Package paths computes where a document lands in the output tree and the
// relative prefix its page needs to reference root-level assets.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// PathInfo is the derived positional data for one document.
type PathInfo struct {
	// Destination is the output file path: the source path made relative to
	// the input root, joined under the output root, with the extension
	// swapped to the output extension.
	Destination string

	// LinkPrefix is "../" repeated once per directory level between the
	// input root and the document's parent directory. A document directly
	// under the input root has an empty prefix.
	LinkPrefix string
}

// ErrOutsideRoot indicates a source path that is not under the input root.
// The traversal should never produce one; this is checked rather than assumed.
var ErrOutsideRoot = errors.New("source path is outside the input root")

// UpSegment is the parent-directory traversal token used in link prefixes.
const UpSegment = "../"

// Resolve computes the destination path and link prefix for sourcePath.
//
// Pure function: no filesystem access, no side effects.
func Resolve(sourcePath, inputRoot, outputRoot, outputExt string) (PathInfo, error) {
	rel, err := filepath.Rel(inputRoot, sourcePath)
	if err != nil {
		return PathInfo{}, fmt.Errorf("%w: %s", ErrOutsideRoot, sourcePath)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return PathInfo{}, fmt.Errorf("%w: %s is not under %s", ErrOutsideRoot, sourcePath, inputRoot)
	}

	dest := filepath.Join(outputRoot, rel)
	dest = strings.TrimSuffix(dest, filepath.Ext(dest)) + outputExt

	return PathInfo{
		Destination: dest,
		LinkPrefix:  strings.Repeat(UpSegment, Depth(rel)),
	}, nil
}

// Depth returns the number of directory levels between the input root and the
// parent directory of rel (an input-root-relative file path). A file directly
// under the root has depth 0.
func Depth(rel string) int {
	dir := filepath.Dir(rel)
	if dir == "." {
		return 0
	}
	return strings.Count(dir, string(filepath.Separator)) + 1
}
