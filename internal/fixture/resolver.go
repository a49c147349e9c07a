/*
Responsibilities
- Derive reference, diff, and test-name identity from an input path
- Keep path derivation in one place so generator and sync cannot drift

Resolve is pure apart from a single existence check on the reference
image; calling it any number of times yields identical results on an
unchanged filesystem.
*/
package fixture

import (
	"os"
	"path"
	"strings"

	"github.com/rohmanhakim/fixturegen/pkg/failure"
	"github.com/rohmanhakim/fixturegen/pkg/fileutil"
)

// testNameReplacer rewrites every character that is not valid in a
// generated identifier. The character classes are disjoint, so the
// substitution order does not matter.
var testNameReplacer = strings.NewReplacer(
	"/", "_",
	"-", "_",
	"=", "_",
	".", "_",
	"#", "_",
)

// Resolve derives the full Fixture identity for inputPath, which must
// be rooted under roots.FixtureDir and use forward slashes.
func Resolve(inputPath string, roots Roots) (Fixture, failure.ClassifiedError) {
	rel, ok := relativeToRoot(inputPath, roots.FixtureDir)
	if !ok {
		return Fixture{}, &ResolveError{
			Message: "expected a path under " + roots.FixtureDir + "/",
			Cause:   ErrCauseOutsideRoot,
			Path:    inputPath,
		}
	}
	if path.Ext(rel) != FixtureExt {
		return Fixture{}, &ResolveError{
			Message: "expected a " + FixtureExt + " file",
			Cause:   ErrCauseWrongFormat,
			Path:    inputPath,
		}
	}

	raster := fileutil.SwapExtension(rel, RasterExt)
	referencePath := path.Join(roots.ReferenceDir, raster)
	diffPath := path.Join(roots.DiffDir, raster)

	name := strings.TrimSuffix(rel, FixtureExt)
	testName := testNameReplacer.Replace(name)

	return NewFixture(
		inputPath,
		referencePath,
		diffPath,
		testName,
		referenceExists(roots, referencePath),
	), nil
}

// relativeToRoot strips the root prefix from p, reporting whether p
// was actually rooted there. "svg" alone or "svg/" are not fixtures.
func relativeToRoot(p string, root string) (string, bool) {
	prefix := root + "/"
	if !strings.HasPrefix(p, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(p, prefix)
	if rel == "" {
		return "", false
	}
	return rel, true
}

// referenceExists is the only I/O Resolve performs.
func referenceExists(roots Roots, referencePath string) bool {
	info, err := os.Stat(roots.Abs(referencePath))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
