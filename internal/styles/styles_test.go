package styles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleListing = `#!ZCONFIG

{#QUALITY}
masterpiece, best quality

>>PHOTO
{#QUALITY}, analog photo, natural light

>>NEON
{#QUALITY}, neon glow,
cyberpunk city
`

func TestParseStylesAndVars(t *testing.T) {
	l, err := Parse(strings.NewReader(sampleListing))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := l.Vars["#QUALITY"]; got != "masterpiece, best quality" {
		t.Fatalf("unexpected var: %q", got)
	}
	names := l.StyleNames()
	if len(names) != 2 || names[0] != "PHOTO" || names[1] != "NEON" {
		t.Fatalf("unexpected style names: %v", names)
	}
	// variable placeholders expand inside style prompts
	if got := l.Styles[0].Prompt; got != "masterpiece, best quality, analog photo, natural light" {
		t.Fatalf("unexpected prompt: %q", got)
	}
	// multi-line content is preserved
	if !strings.Contains(l.Styles[1].Prompt, "neon glow,\ncyberpunk city") {
		t.Fatalf("multi-line prompt lost: %q", l.Styles[1].Prompt)
	}
}

func TestParseRejectsNonZConfig(t *testing.T) {
	if _, err := Parse(strings.NewReader("just some text\n")); err == nil {
		t.Fatalf("expected marker error")
	}
}

func TestParseFile(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "amazing-z-image_styles.txt")
	if err := os.WriteFile(p, []byte(sampleListing), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l, err := ParseFile(p)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if len(l.Styles) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(l.Styles))
	}
	if _, err := ParseFile(filepath.Join(d, "absent.txt")); err == nil {
		t.Fatalf("expected error on missing file")
	}
}
