package types

// Family identifies one workflow family: the filename stem shared by all of its
// checkpoint-format variants, and the prefix used to name its release archive.
type Family struct {
	// Stem of the variant filenames, e.g. "amazing-z-image".
	Name string `json:"name" yaml:"name" toml:"name"`
	// Prefix of the output archive, e.g. "amazingZImage".
	ArchivePrefix string `json:"archive_prefix" yaml:"archive_prefix" toml:"archive_prefix"`
}

// Version holds the parsed components of a release version string such as
// "v2.5.1". Components are kept as strings; they are only ever concatenated
// into archive names, never compared numerically.
type Version struct {
	Major string
	Minor string
	Patch string
}

// ArchiveTag returns the "<MAJOR><MINOR>" fragment embedded in archive names.
// Patch never participates in naming.
func (v Version) ArchiveTag() string { return v.Major + v.Minor }

// GalleryImage pairs a gallery image on disk with its normalized name inside
// the release archive.
type GalleryImage struct {
	Source string // path of the image in the working directory
	Name   string // sequential name inside the archive, e.g. "styles1.jpg"
}

// Bundle records everything that went into one family's release archive.
type Bundle struct {
	Family    Family
	Workflows []string // matched variant JSON files, in candidate order
	License   string
	Gallery   []GalleryImage
	ZipPath   string // where the archive was written
}

// Style is one image style declared in a family's style listing.
type Style struct {
	Name   string
	Prompt string
}
