package fixture

import (
	"fmt"

	"github.com/rohmanhakim/fixturegen/pkg/failure"
)

type ResolveErrorCause string

const (
	ErrCauseOutsideRoot ResolveErrorCause = "input path not under fixture root"
	ErrCauseWrongFormat ResolveErrorCause = "input path has wrong extension"
	ErrCauseWalkFailure ResolveErrorCause = "corpus walk failed"
)

type ResolveError struct {
	Message string
	Cause   ResolveErrorCause
	Path    string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("fixture error: %s: %s", e.Cause, e.Path)
}

func (e *ResolveError) Severity() failure.Severity {
	return failure.SeverityFatal
}
