package release

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"zpack/internal/common/fsutil"
	"zpack/internal/gallery"
	"zpack/internal/styles"
	"zpack/internal/workflow"
	"zpack/pkg/types"
)

// Options configures a Packager. Zero values fall back to package defaults.
type Options struct {
	// WorkDir is where workflow files and fixed inputs are looked up.
	// Defaults to the process working directory.
	WorkDir       string
	Families      []types.Family
	Variations    []string
	Formats       []string
	LicenseFile   string
	ReadmeSource  string
	ReleaseSubdir string
	// Validate parses every bundled workflow as a ComfyUI graph first.
	Validate bool
	// Progress draws a progress bar while the archive is written.
	Progress bool
}

// Packager builds release bundles. One Packager serves one invocation; its run
// ID tags log events and temporary directory names.
type Packager struct {
	opts  Options
	log   zerolog.Logger
	runID string
}

// New applies defaults to opts and returns a ready Packager.
func New(opts Options, log zerolog.Logger) *Packager {
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if len(opts.Families) == 0 {
		opts.Families = DefaultFamilies
	}
	if len(opts.Variations) == 0 {
		opts.Variations = DefaultVariations
	}
	if len(opts.Formats) == 0 {
		opts.Formats = DefaultFormats
	}
	if opts.LicenseFile == "" {
		opts.LicenseFile = DefaultLicenseFile
	}
	if opts.ReadmeSource == "" {
		opts.ReadmeSource = DefaultReadmeSource
	}
	if opts.ReleaseSubdir == "" {
		opts.ReleaseSubdir = DefaultReleaseSubdir
	}
	runID := uuid.NewString()
	return &Packager{
		opts:  opts,
		log:   log.With().Str("run_id", runID).Logger(),
		runID: runID,
	}
}

// Options returns the effective options after defaulting.
func (p *Packager) Options() Options { return p.opts }

// BuildAll builds one archive per configured family under
// <outputBase>/<ReleaseSubdir> and returns the resolved output directory.
// outputBase defaults to the system temporary directory.
func (p *Packager) BuildAll(version, outputBase string) (string, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return "", err
	}
	if outputBase == "" {
		outputBase = os.TempDir()
	}
	outputBase, err = fsutil.ExpandHome(outputBase)
	if err != nil {
		return "", err
	}
	outDir := filepath.Join(outputBase, p.opts.ReleaseSubdir)
	if err := fsutil.EnsureDir(outDir); err != nil {
		return "", err
	}
	for _, fam := range p.opts.Families {
		zipPath := filepath.Join(outDir, ArchiveName(fam, v))
		bundle, err := p.BuildBundle(fam, zipPath)
		if err != nil {
			return "", fmt.Errorf("family %s: %w", fam.Name, err)
		}
		p.log.Info().
			Str("family", fam.Name).
			Str("zip", bundle.ZipPath).
			Int("workflows", len(bundle.Workflows)).
			Int("gallery", len(bundle.Gallery)).
			Msg("bundle written")
	}
	return outDir, nil
}

// BuildBundle assembles and archives one family's bundle at zipPath.
//
// Required inputs (license, readme template, style listing) are checked before
// anything is staged or written; variant workflow files and gallery images are
// optional. All staged copies live in a per-build temporary directory that is
// removed on every exit path.
func (p *Packager) BuildBundle(fam types.Family, zipPath string) (types.Bundle, error) {
	var bundle types.Bundle
	bundle.Family = fam

	wd := p.opts.WorkDir
	licensePath := filepath.Join(wd, p.opts.LicenseFile)
	readmePath := filepath.Join(wd, filepath.FromSlash(p.opts.ReadmeSource))
	stylesPath := filepath.Join(wd, stylesFile(fam.Name))
	for _, required := range []string{licensePath, readmePath, stylesPath} {
		if !fsutil.PathExists(required) {
			return bundle, ErrMissingFile(required)
		}
	}

	// the staged copy is only bundled once the listing parses
	if _, err := styles.ParseFile(stylesPath); err != nil {
		return bundle, fmt.Errorf("style listing: %w", err)
	}

	workflows, err := workflow.ScanVariants(wd, fam.Name, p.opts.Variations, p.opts.Formats)
	if err != nil {
		return bundle, err
	}
	if p.opts.Validate {
		if err := workflow.ValidateAll(workflows); err != nil {
			return bundle, err
		}
	}
	for _, w := range workflows {
		p.log.Debug().Str("family", fam.Name).Str("workflow", filepath.Base(w)).Msg("variant matched")
	}

	images, err := gallery.Collect(wd, fam.Name)
	if err != nil {
		return bundle, err
	}

	stage, err := os.MkdirTemp("", "zpack-"+p.runID+"-*")
	if err != nil {
		return bundle, fmt.Errorf("stage dir: %w", err)
	}
	defer os.RemoveAll(stage)

	stagedReadme := filepath.Join(stage, readmeArchiveName)
	if err := fsutil.CopyFile(readmePath, stagedReadme); err != nil {
		return bundle, err
	}
	stagedStyles := filepath.Join(stage, stylesArchiveName)
	if err := fsutil.CopyFile(stylesPath, stagedStyles); err != nil {
		return bundle, err
	}

	entries := make([]zipEntry, 0, len(workflows)+3+len(images))
	for _, w := range workflows {
		entries = append(entries, zipEntry{Name: filepath.Base(w), Source: w})
	}
	entries = append(entries,
		zipEntry{Name: filepath.Base(p.opts.LicenseFile), Source: licensePath},
		zipEntry{Name: readmeArchiveName, Source: stagedReadme},
		zipEntry{Name: stylesArchiveName, Source: stagedStyles},
	)
	for _, img := range images {
		entries = append(entries, zipEntry{Name: img.Name, Source: img.Source})
	}

	if err := writeZip(zipPath, entries, p.opts.Progress); err != nil {
		return bundle, err
	}

	bundle.Workflows = workflows
	bundle.License = licensePath
	bundle.Gallery = images
	bundle.ZipPath = zipPath
	return bundle, nil
}
