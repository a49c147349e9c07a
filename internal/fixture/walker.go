/*
Responsibilities
- Enumerate every SVG input under the fixture tree
- Resolve each into a full Fixture identity
- Return fixtures sorted by input path so downstream output is
  byte-stable across platforms and reruns

Reading the tree is the only side effect. Any filesystem error while
walking is fatal; a partially enumerated corpus must never reach the
generator.
*/
package fixture

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"

	"github.com/rohmanhakim/fixturegen/pkg/failure"
)

// Walk enumerates all fixtures under roots.FixtureDir.
func Walk(roots Roots) ([]Fixture, failure.ClassifiedError) {
	fixtureRoot := roots.Abs(roots.FixtureDir)

	var inputPaths []string
	err := filepath.WalkDir(fixtureRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(fixtureRoot, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if path.Ext(rel) != FixtureExt {
			return nil
		}
		inputPaths = append(inputPaths, path.Join(roots.FixtureDir, rel))
		return nil
	})
	if err != nil {
		return nil, &ResolveError{
			Message: err.Error(),
			Cause:   ErrCauseWalkFailure,
			Path:    fixtureRoot,
		}
	}

	sort.Strings(inputPaths)

	fixtures := make([]Fixture, 0, len(inputPaths))
	for _, inputPath := range inputPaths {
		f, resolveErr := Resolve(inputPath, roots)
		if resolveErr != nil {
			return nil, resolveErr
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}
