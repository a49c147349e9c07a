package manifest

// Generation outcome

// Result summarizes one manifest generation pass. It is derived
// state for run summaries only; the manifest text is the artifact.
type Result struct {
	totalFixtures     int
	activeTests       int
	skippedExceptions int
	skippedMissingRef int
	staleExceptions   []string
}

func NewResult(
	totalFixtures int,
	activeTests int,
	skippedExceptions int,
	skippedMissingRef int,
	staleExceptions []string,
) Result {
	return Result{
		totalFixtures:     totalFixtures,
		activeTests:       activeTests,
		skippedExceptions: skippedExceptions,
		skippedMissingRef: skippedMissingRef,
		staleExceptions:   staleExceptions,
	}
}

// TotalFixtures returns how many fixtures the corpus walk yielded.
func (r Result) TotalFixtures() int {
	return r.totalFixtures
}

// ActiveTests returns how many declarations are not skipped.
func (r Result) ActiveTests() int {
	return r.activeTests
}

// SkippedExceptions returns how many declarations were skipped via the
// exception table.
func (r Result) SkippedExceptions() int {
	return r.skippedExceptions
}

// SkippedMissingRef returns how many declarations were skipped for a
// missing reference image.
func (r Result) SkippedMissingRef() int {
	return r.skippedMissingRef
}

// StaleExceptions returns exception-table paths that matched no
// fixture in this walk. Inert for generation, reported for hygiene.
func (r Result) StaleExceptions() []string {
	return r.staleExceptions
}
