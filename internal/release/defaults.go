package release

import "zpack/pkg/types"

// DefaultFamilies are the workflow families shipped by the Amazing Z-Image
// repositories, in build order.
var DefaultFamilies = []types.Family{
	{Name: "amazing-z-image", ArchivePrefix: "amazingZImage"},
	{Name: "amazing-z-comics", ArchivePrefix: "amazingZComics"},
	{Name: "amazing-z-photo", ArchivePrefix: "amazingZPhoto"},
}

// DefaultVariations are the suffixes tried between family name and format
// suffix when probing for variant files. Order fixes bundle order.
var DefaultVariations = []string{"", "-a", "-b", "-c", "-d", "-e", "-f"}

// DefaultFormats are the checkpoint-format suffixes, in probe order.
var DefaultFormats = []string{"_GGUF", "_SAFETENSORS"}

const (
	// DefaultVersion is the placeholder used when no version is given.
	DefaultVersion = "v0.0"

	// DefaultLicenseFile is always bundled, under its own name.
	DefaultLicenseFile = "LICENSE"

	// DefaultReadmeSource is the documentation template bundled as README.TXT.
	DefaultReadmeSource = "files/amazing-z-readme.txt"

	// DefaultReleaseSubdir is created under the output base directory.
	DefaultReleaseSubdir = "amazing_release"

	// Names the staged copies take inside every archive.
	readmeArchiveName = "README.TXT"
	stylesArchiveName = "styles.txt"
)

// stylesFile returns the per-family style listing filename.
func stylesFile(family string) string { return family + "_styles.txt" }
