package manifest

import (
	"fmt"

	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/pkg/failure"
)

type GenerateErrorCause string

const (
	ErrCauseNameCollision GenerateErrorCause = "test name collision"
	ErrCauseWalkFailure   GenerateErrorCause = "corpus walk failed"
	ErrCauseWriteFailure  GenerateErrorCause = "manifest write failed"
)

type GenerateError struct {
	Message string
	Cause   GenerateErrorCause
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("manifest error: %s: %s", e.Cause, e.Message)
}

func (e *GenerateError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// mapGenerateErrorToMetadataCause maps generator-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapGenerateErrorToMetadataCause(err *GenerateError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseNameCollision:
		return metadata.CauseCorpusInconsistent
	case ErrCauseWalkFailure:
		return metadata.CauseFilesystemFailure
	case ErrCauseWriteFailure:
		return metadata.CauseFilesystemFailure
	default:
		return metadata.CauseUnknown
	}
}
