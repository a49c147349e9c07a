package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rohmanhakim/fixturegen/internal/fixture"
)

type Config struct {
	//===============
	// Corpus layout
	//===============
	// Directory the local corpus lives in. Empty means the working directory.
	baseDir string
	// Tree under baseDir holding the SVG inputs
	fixtureDir string
	// Tree under baseDir holding the expected renderings
	referenceDir string
	// Tree under baseDir pixel-diff artifacts are written to
	diffDir string

	//===============
	// Sync
	//===============
	// Upstream corpus directory to mirror fixtures from
	upstreamDir string

	//===============
	// Output
	//===============
	// Path of the generated manifest artifact
	manifestPath string
	// Package clause of the generated manifest
	manifestPackage string
	// Path of the generated visual comparison document
	reportPath string

	//===============
	// Generation
	//===============
	// Whether generated test declarations instruct the comparison
	// routine to overwrite reference images instead of failing
	replace bool
}

type configDTO struct {
	BaseDir         string `json:"baseDir,omitempty"`
	FixtureDir      string `json:"fixtureDir,omitempty"`
	ReferenceDir    string `json:"referenceDir,omitempty"`
	DiffDir         string `json:"diffDir,omitempty"`
	UpstreamDir     string `json:"upstreamDir,omitempty"`
	ManifestPath    string `json:"manifestPath,omitempty"`
	ManifestPackage string `json:"manifestPackage,omitempty"`
	ReportPath      string `json:"reportPath,omitempty"`
	Replace         bool   `json:"replace,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	// Start with default config
	cfg, err := WithDefault().Build()
	if err != nil {
		return Config{}, err
	}

	if dto.BaseDir != "" {
		cfg.baseDir = dto.BaseDir
	}
	if dto.FixtureDir != "" {
		cfg.fixtureDir = dto.FixtureDir
	}
	if dto.ReferenceDir != "" {
		cfg.referenceDir = dto.ReferenceDir
	}
	if dto.DiffDir != "" {
		cfg.diffDir = dto.DiffDir
	}
	if dto.UpstreamDir != "" {
		cfg.upstreamDir = dto.UpstreamDir
	}
	if dto.ManifestPath != "" {
		cfg.manifestPath = dto.ManifestPath
	}
	if dto.ManifestPackage != "" {
		cfg.manifestPackage = dto.ManifestPackage
	}
	if dto.ReportPath != "" {
		cfg.reportPath = dto.ReportPath
	}
	// Replace is a boolean, the DTO value is used as-is
	cfg.replace = dto.Replace

	return cfg.Build()
}

// WithConfigFile reads the config from a JSON file.
func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}

	cfgDTO := configDTO{}
	if err := json.Unmarshal(configContent, &cfgDTO); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}
	return newConfigFromDTO(cfgDTO)
}

// WithDefault returns the conventional corpus layout as a builder.
func WithDefault() *Config {
	return &Config{
		baseDir:         ".",
		fixtureDir:      "svg",
		referenceDir:    "ref",
		diffDir:         "diff",
		manifestPath:    "render_manifest_test.go",
		manifestPackage: "rendertests",
		reportPath:      "report.html",
	}
}

func (c *Config) WithBaseDir(dir string) *Config {
	c.baseDir = dir
	return c
}

func (c *Config) WithFixtureDir(dir string) *Config {
	c.fixtureDir = dir
	return c
}

func (c *Config) WithReferenceDir(dir string) *Config {
	c.referenceDir = dir
	return c
}

func (c *Config) WithDiffDir(dir string) *Config {
	c.diffDir = dir
	return c
}

func (c *Config) WithUpstreamDir(dir string) *Config {
	c.upstreamDir = dir
	return c
}

func (c *Config) WithManifestPath(path string) *Config {
	c.manifestPath = path
	return c
}

func (c *Config) WithManifestPackage(name string) *Config {
	c.manifestPackage = name
	return c
}

func (c *Config) WithReportPath(path string) *Config {
	c.reportPath = path
	return c
}

func (c *Config) WithReplace(replace bool) *Config {
	c.replace = replace
	return c
}

func (c *Config) Build() (Config, error) {
	if c.fixtureDir == "" || c.referenceDir == "" || c.diffDir == "" {
		return Config{}, fmt.Errorf("%w: corpus trees must be named", ErrInvalidConfig)
	}
	if c.fixtureDir == c.referenceDir || c.fixtureDir == c.diffDir || c.referenceDir == c.diffDir {
		return Config{}, fmt.Errorf("%w: corpus trees must be distinct", ErrInvalidConfig)
	}
	if c.manifestPath == "" {
		return Config{}, fmt.Errorf("%w: manifest path must not be empty", ErrInvalidConfig)
	}
	if c.manifestPackage == "" {
		return Config{}, fmt.Errorf("%w: manifest package must not be empty", ErrInvalidConfig)
	}
	return *c, nil
}

func (c Config) BaseDir() string {
	return c.baseDir
}

func (c Config) FixtureDir() string {
	return c.fixtureDir
}

func (c Config) ReferenceDir() string {
	return c.referenceDir
}

func (c Config) DiffDir() string {
	return c.diffDir
}

func (c Config) UpstreamDir() string {
	return c.upstreamDir
}

func (c Config) ManifestPath() string {
	return c.manifestPath
}

func (c Config) ManifestPackage() string {
	return c.manifestPackage
}

func (c Config) ReportPath() string {
	return c.reportPath
}

func (c Config) Replace() bool {
	return c.replace
}

// Roots assembles the fixture.Roots view of the corpus layout.
func (c Config) Roots() fixture.Roots {
	return fixture.Roots{
		BaseDir:      c.baseDir,
		FixtureDir:   c.fixtureDir,
		ReferenceDir: c.referenceDir,
		DiffDir:      c.diffDir,
	}
}
