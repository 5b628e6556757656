// Package gallery collects per-family style gallery images for inclusion in a
// release bundle.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"zpack/pkg/types"
)

// Collect finds the gallery images for a family in dir. Sources are named
// "<family>_styles<N>.jpg"; each is assigned a normalized sequential archive
// name "styles1.jpg" .. "stylesN.jpg", renumbered contiguously in ascending
// source-number order so gaps in the source numbering do not leak into the
// bundle. No images is not an error; the gallery is optional.
func Collect(dir, family string) ([]types.GalleryImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	prefix := family + "_styles"

	type numbered struct {
		n    int
		name string
	}
	var matches []numbered
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(strings.ToLower(name), ".jpg") {
			continue
		}
		mid := name[len(prefix) : len(name)-len(".jpg")]
		n, err := strconv.Atoi(mid)
		if err != nil {
			// "<family>_styles.txt" and friends land here; not gallery images
			continue
		}
		matches = append(matches, numbered{n: n, name: name})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].n < matches[j].n })

	images := make([]types.GalleryImage, 0, len(matches))
	for i, m := range matches {
		images = append(images, types.GalleryImage{
			Source: filepath.Join(dir, m.name),
			Name:   fmt.Sprintf("styles%d.jpg", i+1),
		})
	}
	return images, nil
}
