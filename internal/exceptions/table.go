/*
Responsibilities
- Hold the hand-maintained table of known-bad fixtures
- Answer exact-path lookups for the manifest generator
- Expose the table for coverage verification

The table is compiled in on purpose: it tracks this tool's own
knowledge of conversion limitations, so an entry changes exactly when
the generator's expectations change. No glob, prefix, or regex
matching; a formatting mismatch silently fails to match, which the
verify command exists to catch.
*/
package exceptions

import "sort"

// defaultEntries is the hand-maintained skip list, keyed by exact
// root-relative input path.
var defaultEntries = []Entry{
	{
		path:    "svg/structure/svg/not-UTF-8-encoding.svg",
		kind:    ReasonUnsupported,
		message: "invalid encoding",
	},
	{
		path:    "svg/structure/image/float-size.svg",
		kind:    ReasonUnsupported,
		message: "fractional raster dimensions cannot round-trip",
	},
	{
		path:    "svg/paint-servers/pattern/patternContentUnits=objectBoundingBox.svg",
		kind:    ReasonUnsupported,
		message: "pattern content units not representable",
	},
	{
		path:    "svg/filters/feTurbulence/simple-case.svg",
		kind:    ReasonNotImplemented,
		message: "not yet implemented",
	},
	{
		path:    "svg/filters/feDisplacementMap/simple-case.svg",
		kind:    ReasonNotImplemented,
		message: "not yet implemented",
	},
	{
		path:    "svg/text/textPath/closed-path.svg",
		kind:    ReasonNotImplemented,
		message: "not yet implemented",
	},
	{
		path:    "svg/filters/filter/huge-region.svg",
		kind:    ReasonEnvironmentHazard,
		message: "will exceed CI time budget",
	},
	{
		path:    "svg/structure/image/url-to-png.svg",
		kind:    ReasonEnvironmentHazard,
		message: "fetches a remote resource",
	},
	{
		path:    "svg/masking/mask/color-interpolation=linearRGB.svg",
		kind:    ReasonNeedsInvestigation,
		message: "needs investigation",
	},
	{
		path:    "svg/painting/marker/with-viewBox-1.svg",
		kind:    ReasonNeedsInvestigation,
		message: "needs investigation",
	},
}

// Table answers skip lookups for the manifest generator.
type Table struct {
	byPath map[string]Entry
}

// NewTable builds a Table from explicit entries. Later entries win on
// duplicate paths.
func NewTable(entries []Entry) Table {
	byPath := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byPath[e.path] = e
	}
	return Table{byPath: byPath}
}

// Default returns the compiled-in table.
func Default() Table {
	return NewTable(defaultEntries)
}

// Lookup returns the entry for the exact input path, if any.
func (t Table) Lookup(inputPath string) (Entry, bool) {
	e, ok := t.byPath[inputPath]
	return e, ok
}

// Entries returns all entries sorted by path.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.byPath))
	for _, e := range t.byPath {
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries
}

// Verify returns the entries whose path matches none of the known
// corpus input paths. A stale entry is inert during generation but
// usually means the fixture moved or the table key has a typo.
func (t Table) Verify(knownInputPaths []string) []Entry {
	known := make(map[string]struct{}, len(knownInputPaths))
	for _, p := range knownInputPaths {
		known[p] = struct{}{}
	}

	var stale []Entry
	for _, e := range t.byPath {
		if _, ok := known[e.path]; !ok {
			stale = append(stale, e)
		}
	}
	sortEntries(stale)
	return stale
}

// CountByKind tallies entries per reason kind for run summaries.
func (t Table) CountByKind() map[ReasonKind]int {
	counts := make(map[ReasonKind]int)
	for _, e := range t.byPath {
		counts[e.kind]++
	}
	return counts
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})
}
