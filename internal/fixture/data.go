package fixture

import "path/filepath"

// Corpus identity

// Fixture identifies one visual test case: an SVG input plus the
// derived locations of its reference image and diff artifact.
// Reference and diff paths are never stored independently of the
// input path; they are recomputed on every resolve.
type Fixture struct {
	inputPath     string
	referencePath string
	diffPath      string
	testName      string
	hasReference  bool
}

// NewFixture creates a new immutable Fixture.
// All paths must already be root-relative and forward-slash separated.
func NewFixture(
	inputPath string,
	referencePath string,
	diffPath string,
	testName string,
	hasReference bool,
) Fixture {
	return Fixture{
		inputPath:     inputPath,
		referencePath: referencePath,
		diffPath:      diffPath,
		testName:      testName,
		hasReference:  hasReference,
	}
}

// InputPath returns the root-relative path of the SVG source file.
func (f Fixture) InputPath() string {
	return f.inputPath
}

// ReferencePath returns the derived path of the expected rendering.
func (f Fixture) ReferencePath() string {
	return f.referencePath
}

// DiffPath returns the derived path a pixel-diff artifact would be
// written to on failure.
func (f Fixture) DiffPath() string {
	return f.diffPath
}

// TestName returns the derived manifest identifier.
func (f Fixture) TestName() string {
	return f.testName
}

// HasReference reports whether the reference image existed on disk
// when the fixture was resolved.
func (f Fixture) HasReference() bool {
	return f.hasReference
}

// Roots holds the three directory trees a corpus is spread across.
// All three share identical relative substructure. FixtureDir,
// ReferenceDir and DiffDir are names relative to BaseDir; every path a
// Fixture carries is BaseDir-relative and forward-slash separated, so
// identities stay byte-stable no matter where the corpus lives on disk.
type Roots struct {
	// Directory the corpus lives in. Empty means the working directory.
	BaseDir string
	// Tree holding the SVG inputs, e.g. "svg".
	FixtureDir string
	// Tree holding the expected renderings, e.g. "ref".
	ReferenceDir string
	// Tree pixel-diff artifacts are written to, e.g. "diff".
	DiffDir string
}

// DefaultRoots returns the conventional corpus layout under baseDir.
func DefaultRoots(baseDir string) Roots {
	return Roots{
		BaseDir:      baseDir,
		FixtureDir:   "svg",
		ReferenceDir: "ref",
		DiffDir:      "diff",
	}
}

// Abs converts a BaseDir-relative forward-slash path into a filesystem
// path under BaseDir.
func (r Roots) Abs(rel string) string {
	return filepath.Join(r.BaseDir, filepath.FromSlash(rel))
}

const (
	// FixtureExt is the extension of corpus input files.
	FixtureExt = ".svg"
	// RasterExt is the extension reference and diff images carry.
	RasterExt = ".png"
)
