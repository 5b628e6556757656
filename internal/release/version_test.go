package release

import (
	"testing"

	"zpack/pkg/types"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in                  string
		major, minor, patch string
		ok                  bool
	}{
		{"v2.5.1", "2", "5", "1", true},
		{"v3.0.0", "3", "0", "0", true},
		{"v1.2", "1", "2", "", true},
		{"1.2.3", "1", "2", "3", true}, // leading v optional
		{"v10.04", "10", "04", "", true},
		{"v1", "", "", "", false},
		{"", "", "", "", false},
		{"v1.2.3.4", "", "", "", false},
		{"v.2", "", "", "", false},
		{"v1.", "", "", "", false},
		{"v1.2.", "", "", "", false},
	}
	for _, c := range cases {
		v, err := ParseVersion(c.in)
		if c.ok != (err == nil) {
			t.Fatalf("%q: err=%v, want ok=%v", c.in, err, c.ok)
		}
		if !c.ok {
			continue
		}
		if v.Major != c.major || v.Minor != c.minor || v.Patch != c.patch {
			t.Fatalf("%q: got %+v", c.in, v)
		}
	}
}

func TestArchiveNameIgnoresPatch(t *testing.T) {
	fam := types.Family{Name: "amazing-z-image", ArchivePrefix: "amazingZImage"}
	for _, in := range []string{"v2.5.1", "v2.5.9", "v2.5"} {
		v, err := ParseVersion(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got := ArchiveName(fam, v); got != "amazingZImage_v25.zip" {
			t.Fatalf("%q: got %q", in, got)
		}
	}
}
