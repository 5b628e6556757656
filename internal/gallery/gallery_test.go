package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("jpg"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestCollectRenumbersSequentially(t *testing.T) {
	d := t.TempDir()
	// gaps and unordered creation; expect contiguous renumbering by source order
	touch(t, d, "fam_styles7.jpg")
	touch(t, d, "fam_styles2.jpg")
	touch(t, d, "fam_styles10.jpg")
	// must be ignored
	touch(t, d, "fam_styles.txt")
	touch(t, d, "fam_stylesX.jpg")
	touch(t, d, "other_styles1.jpg")

	images, err := Collect(d, "fam")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d: %v", len(images), images)
	}
	wantSources := []string{"fam_styles2.jpg", "fam_styles7.jpg", "fam_styles10.jpg"}
	for i, img := range images {
		if filepath.Base(img.Source) != wantSources[i] {
			t.Fatalf("position %d: expected source %s, got %s", i, wantSources[i], img.Source)
		}
		wantName := fmt.Sprintf("styles%d.jpg", i+1)
		if img.Name != wantName {
			t.Fatalf("position %d: expected name %s, got %s", i, wantName, img.Name)
		}
	}
}

func TestCollectEmpty(t *testing.T) {
	images, err := Collect(t.TempDir(), "fam")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %v", images)
	}
}

func TestCollectBadDir(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "missing"), "fam"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
