package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const testListing = "#!ZCONFIG\n\n>>PHOTO\nanalog photo\n\n>>NEON\nneon glow\n"

const testWorkflow = `{
  "last_node_id": 1,
  "last_link_id": 0,
  "nodes": [{"id": 1, "type": "KSampler", "order": 0, "mode": 0}],
  "links": [],
  "groups": [],
  "version": 0.4
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func setupReleaseDir(t *testing.T) string {
	t.Helper()
	wd := t.TempDir()
	writeFile(t, wd, "LICENSE", "license")
	writeFile(t, wd, "files/amazing-z-readme.txt", "readme")
	writeFile(t, wd, "amazing-z-image_GGUF.json", testWorkflow)
	writeFile(t, wd, "amazing-z-image_styles.txt", testListing)
	writeFile(t, wd, "amazing-z-comics_styles.txt", testListing)
	writeFile(t, wd, "amazing-z-photo_styles.txt", testListing)
	return wd
}

func TestReleaseCommand(t *testing.T) {
	wd := setupReleaseDir(t)
	out := t.TempDir()
	code := MainWithArgs([]string{"--workdir", wd, "--log-level", "error", "release", "v3.0.0", out, "--no-progress"})
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	zipPath := filepath.Join(out, "amazing_release", "amazingZImage_v30.zip")
	if _, err := os.Stat(zipPath); err != nil {
		t.Fatalf("expected archive at %s: %v", zipPath, err)
	}
}

func TestReleaseCommandMissingLicense(t *testing.T) {
	wd := setupReleaseDir(t)
	if err := os.Remove(filepath.Join(wd, "LICENSE")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	code := MainWithArgs([]string{"--workdir", wd, "--log-level", "error", "release", "v3.0.0", t.TempDir(), "--no-progress"})
	if code == 0 {
		t.Fatalf("expected non-zero exit")
	}
}

func TestReleaseCommandBadVersion(t *testing.T) {
	wd := setupReleaseDir(t)
	code := MainWithArgs([]string{"--workdir", wd, "--log-level", "error", "release", "v3", t.TempDir(), "--no-progress"})
	if code == 0 {
		t.Fatalf("expected non-zero exit")
	}
}

func TestValidateCommand(t *testing.T) {
	wd := setupReleaseDir(t)
	if code := MainWithArgs([]string{"--log-level", "error", "validate", wd}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	// corrupt one workflow
	writeFile(t, wd, "amazing-z-image_GGUF.json", `{"nodes": [`)
	if code := MainWithArgs([]string{"--log-level", "error", "validate", wd}); code == 0 {
		t.Fatalf("expected non-zero exit on corrupt workflow")
	}
}

func TestStylesCommand(t *testing.T) {
	wd := setupReleaseDir(t)
	if code := MainWithArgs([]string{"--workdir", wd, "styles", "amazing-z-image"}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if code := MainWithArgs([]string{"--workdir", wd, "styles", "unknown-family"}); code == 0 {
		t.Fatalf("expected non-zero exit for unknown family")
	}
}

func TestFamiliesCommand(t *testing.T) {
	if code := MainWithArgs([]string{"families", "--version", "v2.5.1"}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
}

func TestConfigFileOverride(t *testing.T) {
	wd := t.TempDir()
	writeFile(t, wd, "COPYING", "license")
	writeFile(t, wd, "docs/readme.txt", "readme")
	writeFile(t, wd, "my-family_styles.txt", testListing)
	writeFile(t, wd, "my-family_GGUF.json", testWorkflow)
	cfgPath := filepath.Join(wd, "zpack.yaml")
	writeFile(t, wd, "zpack.yaml",
		"license_file: COPYING\nreadme_source: docs/readme.txt\nrelease_subdir: rel\nfamilies:\n  - name: my-family\n    archive_prefix: myFamily\n")

	out := t.TempDir()
	code := MainWithArgs([]string{"--workdir", wd, "--config", cfgPath, "--log-level", "error", "release", "v1.0", out, "--no-progress"})
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	zipPath := filepath.Join(out, "rel", "myFamily_v10.zip")
	if _, err := os.Stat(zipPath); err != nil {
		t.Fatalf("expected archive at %s: %v", zipPath, err)
	}
}

func TestUnknownCommand(t *testing.T) {
	if code := MainWithArgs([]string{"frobnicate"}); code == 0 {
		t.Fatalf("expected non-zero exit")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("ZPACK_TEST_STR", "x")
	if envStr("ZPACK_TEST_STR", "d") != "x" || envStr("ZPACK_TEST_UNSET", "d") != "d" {
		t.Fatalf("envStr")
	}
	t.Setenv("ZPACK_TEST_BOOL", "yes")
	if !envBool("ZPACK_TEST_BOOL", false) || envBool("ZPACK_TEST_UNSET", false) {
		t.Fatalf("envBool")
	}
}
