package mirror_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohmanhakim/fixturegen/internal/fixture"
	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/internal/mirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetadataSink struct {
	errors    []metadata.ErrorCause
	artifacts []string
}

func (s *fakeMetadataSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	errorString string,
	attrs []metadata.Attribute,
) {
	s.errors = append(s.errors, cause)
}

func (s *fakeMetadataSink) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
	s.artifacts = append(s.artifacts, path)
}

func writeFile(t *testing.T, baseDir string, rel string, content string) {
	t.Helper()
	full := filepath.Join(baseDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func readFile(t *testing.T, baseDir string, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(content)
}

func TestSync_CopiesMissingFixtures(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "tests/q.svg", "<svg>q</svg>")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	report, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Copied())
	assert.Equal(t, 0, report.Unchanged())
	assert.Empty(t, report.SuperfluousTests())
	assert.Equal(t, "<svg>q</svg>", readFile(t, localDir, "svg/tests/q.svg"))
}

func TestSync_OverwritesLocalEdits(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "shapes/rect.svg", "<svg>upstream</svg>")
	writeFile(t, localDir, "svg/shapes/rect.svg", "<svg>local edit</svg>")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	report, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Copied())
	assert.Equal(t, "<svg>upstream</svg>", readFile(t, localDir, "svg/shapes/rect.svg"))
}

func TestSync_LeavesIdenticalFixturesAlone(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "shapes/rect.svg", "<svg/>")
	writeFile(t, localDir, "svg/shapes/rect.svg", "<svg/>")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	report, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Copied())
	assert.Equal(t, 1, report.Unchanged())
	assert.Empty(t, sink.artifacts)
}

func TestSync_DenylistedFixtureIsNeverMirrored(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "structure/svg/not-UTF-8-encoding.svg", "\xff\xfe broken")
	writeFile(t, upstreamDir, "structure/svg/fine.svg", "<svg/>")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	report, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Equal(t, []string{"structure/svg/not-UTF-8-encoding.svg"}, report.Denied())
	assert.Equal(t, 1, report.Copied())

	_, statErr := os.Stat(filepath.Join(localDir, "svg", "structure", "svg", "not-UTF-8-encoding.svg"))
	assert.True(t, os.IsNotExist(statErr))
	assert.Contains(t, sink.errors, metadata.CausePolicyExcluded)
}

func TestSync_ReportsSuperfluousTests(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "shapes/rect.svg", "<svg/>")
	writeFile(t, localDir, "svg/shapes/rect.svg", "<svg/>")
	writeFile(t, localDir, "svg/removed/old-case.svg", "<svg/>")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	report, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Equal(t, []string{"removed/old-case.svg"}, report.SuperfluousTests())

	// reporting only, never deleted
	_, statErr := os.Stat(filepath.Join(localDir, "svg", "removed", "old-case.svg"))
	assert.NoError(t, statErr)
}

func TestSync_ReportsSuperfluousReferenceImages(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "shapes/rect.svg", "<svg/>")
	writeFile(t, localDir, "svg/shapes/rect.svg", "<svg/>")
	writeFile(t, localDir, "ref/shapes/rect.png", "png")
	writeFile(t, localDir, "ref/orphan/stale.png", "png")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	report, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Equal(t, []string{"orphan/stale.svg"}, report.SuperfluousRefs())
}

func TestSync_LocalIsSupersetOfUpstreamAfterwards(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "a/one.svg", "<svg>1</svg>")
	writeFile(t, upstreamDir, "b/two.svg", "<svg>2</svg>")
	writeFile(t, upstreamDir, "c/deep/three.svg", "<svg>3</svg>")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	_, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Equal(t, "<svg>1</svg>", readFile(t, localDir, "svg/a/one.svg"))
	assert.Equal(t, "<svg>2</svg>", readFile(t, localDir, "svg/b/two.svg"))
	assert.Equal(t, "<svg>3</svg>", readFile(t, localDir, "svg/c/deep/three.svg"))
}

func TestSync_MissingUpstreamIsFatal(t *testing.T) {
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	_, err := syncer.Sync(filepath.Join(localDir, "nowhere"), roots)
	require.Error(t, err)

	var syncErr *mirror.SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, mirror.ErrCauseUpstreamWalkFailure, syncErr.Cause)
}

func TestSync_FreshMirrorHasNoSuperfluousFindings(t *testing.T) {
	upstreamDir := t.TempDir()
	localDir := t.TempDir()
	roots := fixture.DefaultRoots(localDir)

	writeFile(t, upstreamDir, "tests/q.svg", "<svg/>")

	sink := &fakeMetadataSink{}
	syncer := mirror.NewSyncer(sink)

	report, err := syncer.Sync(upstreamDir, roots)
	require.NoError(t, err)

	assert.Empty(t, report.SuperfluousTests())
	assert.Empty(t, report.SuperfluousRefs())
}
