package manifest

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolvePaths expands glob patterns into manifest paths.
//
// Patterns keep their argument order and the matches of one pattern are sorted, so the resulting
// declaration order is stable between runs. A path matched twice is kept at its first position.
// Plain paths are passed through unchanged and left to the reader to open.
func ResolvePaths(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "no manifest matches pattern"), "pattern", pattern)
		}

		slices.Sort(matches)
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}

	return paths, nil
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[\`)
}
