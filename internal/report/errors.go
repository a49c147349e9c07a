package report

import (
	"fmt"

	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/pkg/failure"
)

type ReportErrorCause string

const (
	ErrCauseWalkFailure  ReportErrorCause = "corpus walk failed"
	ErrCauseReadFailure  ReportErrorCause = "fixture read failed"
	ErrCauseWriteFailure ReportErrorCause = "report write failed"
)

type ReportError struct {
	Message string
	Cause   ReportErrorCause
	Path    string
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report error: %s: %s", e.Cause, e.Path)
}

func (e *ReportError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// mapReportErrorToMetadataCause maps report-local error semantics to
// the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapReportErrorToMetadataCause(err *ReportError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseWalkFailure, ErrCauseReadFailure, ErrCauseWriteFailure:
		return metadata.CauseFilesystemFailure
	default:
		return metadata.CauseUnknown
	}
}
