package mirror

// Sync outcome

// SyncReport summarizes one mirror pass. Superfluous findings are
// reported only; deletion is a manual follow-up outside this tool.
type SyncReport struct {
	copied           int
	unchanged        int
	denied           []string
	superfluousTests []string
	superfluousRefs  []string
}

func NewSyncReport(
	copied int,
	unchanged int,
	denied []string,
	superfluousTests []string,
	superfluousRefs []string,
) SyncReport {
	return SyncReport{
		copied:           copied,
		unchanged:        unchanged,
		denied:           denied,
		superfluousTests: superfluousTests,
		superfluousRefs:  superfluousRefs,
	}
}

// Copied returns how many upstream fixtures were written into the
// local mirror (new or content-changed).
func (r SyncReport) Copied() int {
	return r.copied
}

// Unchanged returns how many upstream fixtures already byte-matched
// the local mirror.
func (r SyncReport) Unchanged() int {
	return r.unchanged
}

// Denied returns the upstream-relative paths excluded by the denylist.
func (r SyncReport) Denied() []string {
	return r.denied
}

// SuperfluousTests returns local fixture paths absent from upstream.
func (r SyncReport) SuperfluousTests() []string {
	return r.superfluousTests
}

// SuperfluousRefs returns local reference images whose implied fixture
// is absent from the local fixture tree.
func (r SyncReport) SuperfluousRefs() []string {
	return r.superfluousRefs
}
