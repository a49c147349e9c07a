package cmd

import (
	"errors"

	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/internal/mirror"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror fixtures from the upstream corpus into the local tree.",
	Long: `sync copies fixtures from the upstream corpus into the local fixture
tree. Unchanged fixtures are left alone, locally edited fixtures are
overwritten, and denylisted fixtures are never mirrored. Fixtures or
expected renderings present locally but absent upstream are reported
as superfluous, never deleted.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := InitConfig()
		if cfg.UpstreamDir() == "" {
			fatal(errors.New("sync requires --upstream-dir or an upstream_dir config entry"))
		}

		recorder := metadata.NewRecorder(newRunId("sync"))
		syncer := mirror.NewSyncer(recorder)

		report, syncErr := syncer.Sync(cfg.UpstreamDir(), cfg.Roots())
		if syncErr != nil {
			drainRecorder(recorder)
			fatal(syncErr)
		}

		errCount := drainRecorder(recorder)
		recorder.RecordFinalRunStats(report.Copied()+report.Unchanged(), len(report.Denied()), errCount, report.Copied())

		printHeader("Sync")
		printStat("copied", report.Copied())
		printStat("unchanged", report.Unchanged())
		printStat("denied", len(report.Denied()))
		for _, p := range report.SuperfluousTests() {
			printWarnLine("superfluous fixture: " + p)
		}
		for _, p := range report.SuperfluousRefs() {
			printWarnLine("superfluous reference: " + p)
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
