package exceptions

// Skip classification

/*
ReasonKind is a closed classification of why a fixture is excluded
from normal test execution.

Rules:
  - The set of kinds is fixed; packages must not invent new meanings.
  - Kinds carry no severity and no retry semantics; a skipped test is
    simply not executed.
  - The attached message is free text for the human reading the
    manifest, conventionally drawn from a small vocabulary.
*/
type ReasonKind int

const (
	// ReasonNeedsInvestigation marks fixtures that fail for a cause
	// nobody has diagnosed yet.
	ReasonNeedsInvestigation ReasonKind = iota
	// ReasonUnsupported marks fixtures exercising structures the
	// conversion tool cannot represent.
	ReasonUnsupported
	// ReasonEnvironmentHazard marks fixtures that endanger the run
	// environment, e.g. by exceeding the CI time budget.
	ReasonEnvironmentHazard
	// ReasonNotImplemented marks features the conversion tool does
	// not implement yet.
	ReasonNotImplemented
)

func (k ReasonKind) String() string {
	switch k {
	case ReasonNeedsInvestigation:
		return "needs investigation"
	case ReasonUnsupported:
		return "unsupported"
	case ReasonEnvironmentHazard:
		return "environment hazard"
	case ReasonNotImplemented:
		return "not implemented"
	default:
		return "unknown"
	}
}

// Entry pairs a corpus input path with the reason it is skipped.
type Entry struct {
	path    string
	kind    ReasonKind
	message string
}

// NewEntry creates a new immutable Entry. path must be the exact
// root-relative input path of the fixture.
func NewEntry(path string, kind ReasonKind, message string) Entry {
	return Entry{
		path:    path,
		kind:    kind,
		message: message,
	}
}

// Path returns the exact root-relative input path the entry matches.
func (e Entry) Path() string {
	return e.path
}

// Kind returns the reason classification.
func (e Entry) Kind() ReasonKind {
	return e.kind
}

// Message returns the human-readable skip reason.
func (e Entry) Message() string {
	return e.message
}
