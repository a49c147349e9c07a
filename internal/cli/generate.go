package cmd

import (
	"fmt"
	"time"

	"github.com/rohmanhakim/fixturegen/internal/build"
	"github.com/rohmanhakim/fixturegen/internal/exceptions"
	"github.com/rohmanhakim/fixturegen/internal/manifest"
	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the test manifest from the local corpus.",
	Long: `generate walks the fixture tree, derives one test declaration per
SVG fixture, applies the exception table and reference availability,
and atomically rewrites the manifest file. Fixtures without an
expected rendering and fixtures with a known exception are emitted as
skipped tests so the corpus stays fully enumerated.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := InitConfig()

		recorder := metadata.NewRecorder(newRunId("generate"))
		generator := manifest.NewGenerator(
			exceptions.Default(),
			recorder,
			build.Version,
			cfg.ManifestPackage(),
		)

		result, genErr := generator.Write(cfg.ManifestPath(), cfg.Roots(), cfg.Replace())
		if genErr != nil {
			drainRecorder(recorder)
			fatal(genErr)
		}

		errCount := drainRecorder(recorder)
		recorder.RecordFinalRunStats(result.TotalFixtures(), result.SkippedExceptions()+result.SkippedMissingRef(), errCount, 0)

		printHeader("Manifest")
		printStat("fixtures", result.TotalFixtures())
		printStat("active tests", result.ActiveTests())
		printStat("skipped (exception)", result.SkippedExceptions())
		printStat("skipped (missing reference)", result.SkippedMissingRef())
		for _, stale := range result.StaleExceptions() {
			printWarnLine("stale exception entry: " + stale)
		}
		printOkLine("wrote " + cfg.ManifestPath())
	},
}

func newRunId(command string) string {
	return fmt.Sprintf("%s-%d", command, time.Now().UnixNano())
}

func init() {
	generateCmd.Flags().BoolVarP(&replaceRefs, "replace", "r", false, "emit tests that overwrite the expected rendering instead of comparing")
	rootCmd.AddCommand(generateCmd)
}
