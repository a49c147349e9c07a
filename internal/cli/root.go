package cmd

import (
	"fmt"
	"os"

	"github.com/rohmanhakim/fixturegen/internal/build"
	"github.com/rohmanhakim/fixturegen/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile         string
	baseDir         string
	fixtureDir      string
	referenceDir    string
	diffDir         string
	upstreamDir     string
	manifestPath    string
	manifestPackage string
	reportPath      string
	replaceRefs     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "fixturegen",
	Short:   "Maintains the visual test corpus and its generated manifest.",
	Version: build.FullVersion(),
	Long: `fixturegen keeps the visual regression corpus of the SVG conversion
tool in shape: it mirrors fixtures from the upstream corpus, derives a
stable test identity for every fixture, applies the compiled-in
exception table, and regenerates the executable test manifest.

The conversion and pixel comparison themselves live in the test
package consuming the manifest; fixturegen only discovers fixtures,
classifies them, and emits the data the test runner needs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "directory the local corpus lives in")
	rootCmd.PersistentFlags().StringVar(&fixtureDir, "fixture-dir", "", "corpus tree holding the SVG inputs")
	rootCmd.PersistentFlags().StringVar(&referenceDir, "reference-dir", "", "corpus tree holding the expected renderings")
	rootCmd.PersistentFlags().StringVar(&diffDir, "diff-dir", "", "corpus tree pixel-diff artifacts are written to")
	rootCmd.PersistentFlags().StringVar(&upstreamDir, "upstream-dir", "", "upstream corpus directory to mirror fixtures from")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest-path", "", "path of the generated manifest artifact")
	rootCmd.PersistentFlags().StringVar(&manifestPackage, "manifest-package", "", "package clause of the generated manifest")
	rootCmd.PersistentFlags().StringVar(&reportPath, "report-path", "", "path of the generated visual comparison document")
}

// InitConfig builds the effective config from the config file or flags.
func InitConfig() config.Config {
	cfg, err := InitConfigWithError()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return cfg
}

// InitConfigWithError builds the effective config, returning any errors.
// This makes it easier to test error cases.
func InitConfigWithError() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	// Build config from CLI flags using the With... functions with method chaining
	configBuilder := config.WithDefault()

	if baseDir != "" {
		configBuilder = configBuilder.WithBaseDir(baseDir)
	}
	if fixtureDir != "" {
		configBuilder = configBuilder.WithFixtureDir(fixtureDir)
	}
	if referenceDir != "" {
		configBuilder = configBuilder.WithReferenceDir(referenceDir)
	}
	if diffDir != "" {
		configBuilder = configBuilder.WithDiffDir(diffDir)
	}
	if upstreamDir != "" {
		configBuilder = configBuilder.WithUpstreamDir(upstreamDir)
	}
	if manifestPath != "" {
		configBuilder = configBuilder.WithManifestPath(manifestPath)
	}
	if manifestPackage != "" {
		configBuilder = configBuilder.WithManifestPackage(manifestPackage)
	}
	if reportPath != "" {
		configBuilder = configBuilder.WithReportPath(reportPath)
	}
	if replaceRefs {
		configBuilder = configBuilder.WithReplace(replaceRefs)
	}

	cfg, err := configBuilder.Build()
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func ResetFlags() {
	cfgFile = ""
	baseDir = ""
	fixtureDir = ""
	referenceDir = ""
	diffDir = ""
	upstreamDir = ""
	manifestPath = ""
	manifestPackage = ""
	reportPath = ""
	replaceRefs = false
}

// Test helper functions to set private flag variables

func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetBaseDirForTest(dir string) {
	baseDir = dir
}

func SetFixtureDirForTest(dir string) {
	fixtureDir = dir
}

func SetReferenceDirForTest(dir string) {
	referenceDir = dir
}

func SetDiffDirForTest(dir string) {
	diffDir = dir
}

func SetUpstreamDirForTest(dir string) {
	upstreamDir = dir
}

func SetManifestPathForTest(path string) {
	manifestPath = path
}

func SetManifestPackageForTest(name string) {
	manifestPackage = name
}

func SetReportPathForTest(path string) {
	reportPath = path
}

func SetReplaceForTest(replace bool) {
	replaceRefs = replace
}
