package cmd

import (
	"fmt"
	"os"

	"github.com/rohmanhakim/fixturegen/internal/exceptions"
	"github.com/rohmanhakim/fixturegen/internal/fixture"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check corpus and exception table consistency.",
	Long: `verify walks the fixture tree and reports exception table entries
that no longer match any fixture, and pairs of fixtures whose derived
test names collide. Any finding makes the command exit non-zero so it
can gate CI.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := InitConfig()

		fixtures, walkErr := fixture.Walk(cfg.Roots())
		if walkErr != nil {
			fatal(walkErr)
		}

		findings := 0

		inputPaths := make([]string, 0, len(fixtures))
		byTestName := make(map[string]string, len(fixtures))
		for _, f := range fixtures {
			inputPaths = append(inputPaths, f.InputPath())
			if prev, ok := byTestName[f.TestName()]; ok {
				printWarnLine(fmt.Sprintf("test name %q derived from both %s and %s", f.TestName(), prev, f.InputPath()))
				findings++
				continue
			}
			byTestName[f.TestName()] = f.InputPath()
		}

		table := exceptions.Default()
		for _, stale := range table.Verify(inputPaths) {
			printWarnLine(fmt.Sprintf("stale exception entry: %s (%s)", stale.Path(), stale.Kind()))
			findings++
		}

		printHeader("Verify")
		printStat("fixtures", len(fixtures))
		counts := table.CountByKind()
		for _, kind := range []exceptions.ReasonKind{
			exceptions.ReasonNeedsInvestigation,
			exceptions.ReasonUnsupported,
			exceptions.ReasonEnvironmentHazard,
			exceptions.ReasonNotImplemented,
		} {
			if counts[kind] > 0 {
				printStat("exceptions ("+kind.String()+")", counts[kind])
			}
		}
		printStat("findings", findings)
		if findings > 0 {
			os.Exit(1)
		}
		printOkLine("corpus is consistent")
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
