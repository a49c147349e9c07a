package mirror

import (
	"fmt"

	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/pkg/failure"
)

type SyncErrorCause string

const (
	ErrCauseUpstreamWalkFailure SyncErrorCause = "upstream walk failed"
	ErrCauseLocalWalkFailure    SyncErrorCause = "local walk failed"
	ErrCauseCopyFailure         SyncErrorCause = "fixture copy failed"
	ErrCauseCompareFailure      SyncErrorCause = "fixture compare failed"
)

type SyncError struct {
	Message string
	Cause   SyncErrorCause
	Path    string
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("mirror error: %s: %s", e.Cause, e.Path)
}

func (e *SyncError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// mapSyncErrorToMetadataCause maps mirror-local error semantics to the
// canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapSyncErrorToMetadataCause(err *SyncError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseUpstreamWalkFailure, ErrCauseLocalWalkFailure:
		return metadata.CauseFilesystemFailure
	case ErrCauseCopyFailure, ErrCauseCompareFailure:
		return metadata.CauseFilesystemFailure
	default:
		return metadata.CauseUnknown
	}
}
