package metadata

/*
runStats
  - Represents a terminal, derived summary of a completed run
  - Contains only aggregate counts
  - Is computed by the invoking command after the run finishes
  - Is recorded exactly once
  - Must not influence generation, sync, or exit-code decisions
*/
type runStats struct {
	totalFixtures int
	totalSkipped  int
	totalErrors   int
	totalCopied   int
}

type ArtifactKind string

const (
	ArtifactManifest     ArtifactKind = "manifest"
	ArtifactVisualReport ArtifactKind = "visual-report"
	ArtifactMirroredSVG  ArtifactKind = "mirrored-svg"
)

/*
ErrorCause is a closed, canonical classification used exclusively for
observability (logging and run summaries).

Rules:
  - ErrorCause is for observability only.
  - It MUST NOT influence control flow, abort, or rerun decisions.
  - Packages MAY map their local errors to ErrorCause, but MUST NOT
    invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST
be used.
*/
type ErrorCause int

const (
	// CauseUnknown is the safe fallback for unclassified failures.
	CauseUnknown ErrorCause = iota
	// CausePathInvalid covers inputs outside the expected root or with
	// the wrong extension.
	CausePathInvalid
	// CauseFilesystemFailure covers read, write, copy, and walk
	// failures against the local filesystem.
	CauseFilesystemFailure
	// CauseCorpusInconsistent covers data-integrity defects in the
	// corpus itself: test-name collisions, stale exception entries,
	// superfluous files.
	CauseCorpusInconsistent
	// CausePolicyExcluded covers fixtures excluded by an explicit
	// policy, e.g. the mirror denylist.
	CausePolicyExcluded
)

func (c ErrorCause) String() string {
	switch c {
	case CausePathInvalid:
		return "path-invalid"
	case CauseFilesystemFailure:
		return "filesystem-failure"
	case CauseCorpusInconsistent:
		return "corpus-inconsistent"
	case CausePolicyExcluded:
		return "policy-excluded"
	default:
		return "unknown"
	}
}

type AttributeKey string

const (
	AttrPath      AttributeKey = "path"
	AttrTestName  AttributeKey = "test_name"
	AttrReason    AttributeKey = "reason"
	AttrWritePath AttributeKey = "write_path"
	AttrField     AttributeKey = "field"
)

type Attribute struct {
	key   AttributeKey
	value string
}

func NewAttr(key AttributeKey, value string) Attribute {
	return Attribute{key: key, value: value}
}

func (a Attribute) Key() AttributeKey {
	return a.key
}

func (a Attribute) Value() string {
	return a.value
}
