package folder

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// walkFiles yields the files below root as slash-separated paths relative to root, skipping
// version-control directories and the package metadata file itself.
func walkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if name := d.Name(); name == ".git" || name == ".jj" {
					return filepath.SkipDir
				}
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if rel == MetadataFile {
				return nil
			}

			if !yield(filepath.ToSlash(rel)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
