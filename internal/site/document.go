package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Document is the unit of work: one discovered source file. It is created by
// discovery, consumed once by the pipeline, and never mutated.
type Document struct {
	SourcePath string
	Raw        []byte
}

// Discover walks the input root and yields a Document for every file carrying
// the source extension. Ordering is not significant and callers must not rely
// on it.
//
// The extension match is exact: sources differing only in extension case
// would resolve to the same destination, so admitting them would let two
// documents race on one output file.
func Discover(inputRoot, sourceExt string) ([]Document, error) {
	var docs []Document

	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != sourceExt {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		docs = append(docs, Document{SourcePath: path, Raw: raw})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}
