// Package extract supplies raw text per source document. The rest of the
// pipeline treats text extraction as a black box: one document in, one
// opaque text blob out.
package extract

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// TextSource produces the raw page text of one document.
type TextSource interface {
	Extract(path string) (string, error)
}

// ListPDFs returns the PDF files under dir in lexical order so that runs
// over the same folder are deterministic. With recursive set it walks
// subfolders as well.
func ListPDFs(dir string, recursive bool) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
