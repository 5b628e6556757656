package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"zpack/internal/config"
	"zpack/internal/release"
	"zpack/internal/styles"
	"zpack/internal/workflow"
)

// packagerOptions resolves flags plus the optional config file into options.
func packagerOptions(cfg *Config) (release.Options, error) {
	opts := release.Options{
		WorkDir:  cfg.WorkDir,
		Validate: !cfg.SkipValidate,
		Progress: !cfg.NoProgress,
	}
	if cfg.ConfigPath == "" {
		return opts, nil
	}
	fileCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return opts, fmt.Errorf("config %s: %w", cfg.ConfigPath, err)
	}
	opts.Families = fileCfg.Families
	opts.Variations = fileCfg.Variations
	opts.Formats = fileCfg.Formats
	opts.LicenseFile = fileCfg.LicenseFile
	opts.ReadmeSource = fileCfg.ReadmeSource
	opts.ReleaseSubdir = fileCfg.ReleaseSubdir
	return opts, nil
}

func fnRelease(cfg *Config, version, outputBase string) error {
	if version == "" {
		version = release.DefaultVersion
	}
	opts, err := packagerOptions(cfg)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLvl)
	p := release.New(opts, log)

	outDir, err := p.BuildAll(version, outputBase)
	if err != nil {
		reportFail(os.Stderr, err)
		return err
	}
	reportDone(os.Stdout, outDir)
	// callers script against this line
	fmt.Println(outDir)
	return nil
}

func fnValidate(cfg *Config, dir string) error {
	opts, err := packagerOptions(cfg)
	if err != nil {
		return err
	}
	opts.WorkDir = dir
	p := release.New(opts, newLogger(cfg.LogLvl))

	total := 0
	for _, fam := range p.Options().Families {
		found, err := workflow.ScanVariants(dir, fam.Name, p.Options().Variations, p.Options().Formats)
		if err != nil {
			return err
		}
		if err := workflow.ValidateAll(found); err != nil {
			reportFail(os.Stderr, err)
			return err
		}
		reportValidated(os.Stdout, fam.Name, len(found))
		total += len(found)
	}
	if total == 0 {
		return fmt.Errorf("no workflow files found in %s", dir)
	}
	return nil
}

func fnStyles(cfg *Config, family string) error {
	listing, err := styles.ParseFile(stylesPath(cfg.WorkDir, family))
	if err != nil {
		return err
	}
	reportStyles(os.Stdout, family, listing.StyleNames())
	return nil
}

func stylesPath(workDir, family string) string {
	return filepath.Join(workDir, family+"_styles.txt")
}

func fnFamilies(cfg *Config, version string) error {
	opts, err := packagerOptions(cfg)
	if err != nil {
		return err
	}
	p := release.New(opts, newLogger(cfg.LogLvl))
	if version == "" {
		version = release.DefaultVersion
	}
	v, err := release.ParseVersion(version)
	if err != nil {
		return err
	}
	for _, fam := range p.Options().Families {
		fmt.Printf("%-20s %s\n", fam.Name, release.ArchiveName(fam, v))
	}
	return nil
}
