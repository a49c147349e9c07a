package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rohmanhakim/fixturegen/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpusFile creates a file under baseDir from a forward-slash
// relative path, creating parent directories as needed.
func writeCorpusFile(t *testing.T, baseDir string, rel string, content string) {
	t.Helper()
	full := filepath.Join(baseDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestWalk_YieldsOnlyFixtureFiles(t *testing.T) {
	baseDir := t.TempDir()
	roots := fixture.DefaultRoots(baseDir)

	writeCorpusFile(t, baseDir, "svg/shapes/rect/simple-case.svg", "<svg/>")
	writeCorpusFile(t, baseDir, "svg/painting/stroke.svg", "<svg/>")
	writeCorpusFile(t, baseDir, "svg/README.md", "not a fixture")
	writeCorpusFile(t, baseDir, "svg/shapes/notes.txt", "not a fixture")

	fixtures, err := fixture.Walk(roots)
	require.NoError(t, err)

	var inputPaths []string
	for _, f := range fixtures {
		inputPaths = append(inputPaths, f.InputPath())
	}
	assert.Equal(t, []string{
		"svg/painting/stroke.svg",
		"svg/shapes/rect/simple-case.svg",
	}, inputPaths)
}

func TestWalk_SortedByInputPath(t *testing.T) {
	baseDir := t.TempDir()
	roots := fixture.DefaultRoots(baseDir)

	writeCorpusFile(t, baseDir, "svg/z/last.svg", "<svg/>")
	writeCorpusFile(t, baseDir, "svg/a/first.svg", "<svg/>")
	writeCorpusFile(t, baseDir, "svg/m/middle.svg", "<svg/>")

	fixtures, err := fixture.Walk(roots)
	require.NoError(t, err)
	require.Len(t, fixtures, 3)

	assert.Equal(t, "svg/a/first.svg", fixtures[0].InputPath())
	assert.Equal(t, "svg/m/middle.svg", fixtures[1].InputPath())
	assert.Equal(t, "svg/z/last.svg", fixtures[2].InputPath())
}

func TestWalk_ResolvesReferences(t *testing.T) {
	baseDir := t.TempDir()
	roots := fixture.DefaultRoots(baseDir)

	writeCorpusFile(t, baseDir, "svg/with-ref.svg", "<svg/>")
	writeCorpusFile(t, baseDir, "svg/without-ref.svg", "<svg/>")
	writeCorpusFile(t, baseDir, "ref/with-ref.png", "png")

	fixtures, err := fixture.Walk(roots)
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	assert.True(t, fixtures[0].HasReference())
	assert.Equal(t, "with_ref", fixtures[0].TestName())
	assert.False(t, fixtures[1].HasReference())
	assert.Equal(t, "without_ref", fixtures[1].TestName())
}

func TestWalk_MissingRootIsFatal(t *testing.T) {
	roots := fixture.DefaultRoots(filepath.Join(t.TempDir(), "nowhere"))

	_, err := fixture.Walk(roots)
	require.Error(t, err)

	var resolveErr *fixture.ResolveError
	if assert.ErrorAs(t, err, &resolveErr) {
		assert.Equal(t, fixture.ErrCauseWalkFailure, resolveErr.Cause)
	}
}

func TestWalk_DeterministicAcrossRuns(t *testing.T) {
	baseDir := t.TempDir()
	roots := fixture.DefaultRoots(baseDir)

	writeCorpusFile(t, baseDir, "svg/a/b-c.svg", "<svg/>")
	writeCorpusFile(t, baseDir, "svg/x.svg", "<svg/>")

	first, err := fixture.Walk(roots)
	require.NoError(t, err)
	second, err := fixture.Walk(roots)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
