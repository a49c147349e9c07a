package manifest_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/stretchr/testify/require"
)

// fakeMetadataSink captures recorded events for assertions.
type fakeMetadataSink struct {
	errors    []fakeErrorEvent
	artifacts []fakeArtifactEvent
}

type fakeErrorEvent struct {
	packageName string
	action      string
	cause       metadata.ErrorCause
	errorString string
	attrs       []metadata.Attribute
}

type fakeArtifactEvent struct {
	kind metadata.ArtifactKind
	path string
}

func (s *fakeMetadataSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	errorString string,
	attrs []metadata.Attribute,
) {
	s.errors = append(s.errors, fakeErrorEvent{
		packageName: packageName,
		action:      action,
		cause:       cause,
		errorString: errorString,
		attrs:       attrs,
	})
}

func (s *fakeMetadataSink) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
	s.artifacts = append(s.artifacts, fakeArtifactEvent{
		kind: kind,
		path: path,
	})
}

// writeCorpusFile creates a file under baseDir from a forward-slash
// relative path, creating parent directories as needed.
func writeCorpusFile(t *testing.T, baseDir string, rel string, content string) {
	t.Helper()
	full := filepath.Join(baseDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}
