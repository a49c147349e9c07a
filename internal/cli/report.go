package cmd

import (
	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/internal/report"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the side-by-side visual comparison document.",
	Long: `report renders an HTML page placing every fixture next to its
expected rendering, scaled to a common display width, so regressions
can be reviewed visually. Fixtures without an expected rendering are
left out.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := InitConfig()

		recorder := metadata.NewRecorder(newRunId("report"))
		builder := report.NewBuilder(recorder)

		if buildErr := builder.Write(cfg.ReportPath(), cfg.Roots()); buildErr != nil {
			drainRecorder(recorder)
			fatal(buildErr)
		}

		drainRecorder(recorder)
		printHeader("Report")
		printOkLine("wrote " + cfg.ReportPath())
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
