// Package workflow locates and validates ComfyUI workflow JSON files for one
// workflow family.
package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"zpack/internal/common/fsutil"
)

// ScanVariants returns the workflow files present in dir for the given family,
// trying every (variation, format) candidate name in order. A candidate that
// does not exist is skipped; the candidate order fixes the order of the
// returned paths, which keeps bundle contents deterministic across runs.
func ScanVariants(dir, family string, variations, formats []string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	if st, err := os.Stat(abs); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("working directory %s: not a directory", abs)
	}
	var found []string
	for _, variation := range variations {
		for _, format := range formats {
			candidate := family + variation + format + ".json"
			p := filepath.Join(abs, candidate)
			if fsutil.PathExists(p) {
				found = append(found, p)
			}
		}
	}
	return found, nil
}
