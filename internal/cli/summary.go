package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rohmanhakim/fixturegen/internal/metadata"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func printHeader(title string) {
	fmt.Println(headerStyle.Render(title))
}

func printStat(label string, value int) {
	fmt.Printf("  %s %d\n", mutedStyle.Render(label+":"), value)
}

func printWarnLine(line string) {
	fmt.Println(warnStyle.Render("  ! " + line))
}

func printOkLine(line string) {
	fmt.Println(okStyle.Render("  " + line))
}

// drainRecorder prints every error and artifact the run recorded.
// Returns the number of errors so callers can pick an exit code.
func drainRecorder(recorder *metadata.Recorder) int {
	artifacts := recorder.Artifacts()
	if len(artifacts) > 0 {
		printHeader("Artifacts")
		for _, a := range artifacts {
			printOkLine(fmt.Sprintf("%s %s", a.Kind, a.Path))
		}
	}

	errs := recorder.Errors()
	if len(errs) > 0 {
		printHeader("Recorded errors")
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, failStyle.Render(
				fmt.Sprintf("  %s/%s [%s] %s", e.PackageName, e.Action, e.Cause, e.ErrorString),
			))
			for _, attr := range e.Attrs {
				fmt.Fprintln(os.Stderr, mutedStyle.Render(
					fmt.Sprintf("      %s=%s", attr.Key(), attr.Value()),
				))
			}
		}
	}
	return len(errs)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, failStyle.Render("Error: "+err.Error()))
	os.Exit(1)
}
