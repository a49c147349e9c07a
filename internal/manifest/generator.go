/*
Responsibilities
- Serialize one test declaration per corpus fixture
- Annotate skipped declarations with their recorded reason
- Overwrite the manifest artifact atomically

Output Characteristics
- Deterministic: byte-identical output for an unchanged corpus
- Fully regenerated on every run, never incrementally patched
- Skips are annotations inside the manifest, not omissions
*/
package manifest

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/rohmanhakim/fixturegen/internal/exceptions"
	"github.com/rohmanhakim/fixturegen/internal/fixture"
	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/pkg/failure"
	"github.com/rohmanhakim/fixturegen/pkg/fileutil"
)

// preambleTemplate is the fixed head of every manifest. The generated
// file is a plain Go test file; the consuming package supplies the
// run helper that drives the external conversion and comparison:
//
//	run(svgPath, refPath, diffPath string, replace bool) int
const preambleTemplate = `// Code generated by {{.Tool}} {{.Version}}. DO NOT EDIT.
//
// One test declaration per corpus fixture. Regenerate with
// "{{.Tool}} generate" after changing the corpus; edits made here
// are lost on the next run.
//
// Every test invokes the run helper this package provides:
//
//	run(svgPath, refPath, diffPath string, replace bool) int
//
// A zero return denotes a pass.

package {{.Package}}

import "testing"
`

type preambleData struct {
	Tool    string
	Version string
	Package string
}

type Generator struct {
	table        exceptions.Table
	metadataSink metadata.MetadataSink
	version      string
	packageName  string
}

func NewGenerator(
	table exceptions.Table,
	metadataSink metadata.MetadataSink,
	version string,
	packageName string,
) Generator {
	return Generator{
		table:        table,
		metadataSink: metadataSink,
		version:      version,
		packageName:  packageName,
	}
}

// Generate walks the corpus under roots and assembles the full
// manifest text. replaceMode is threaded into every declaration as the
// replace argument of the run helper.
func (g *Generator) Generate(roots fixture.Roots, replaceMode bool) (string, Result, failure.ClassifiedError) {
	fixtures, walkErr := fixture.Walk(roots)
	if walkErr != nil {
		genErr := &GenerateError{
			Message: walkErr.Error(),
			Cause:   ErrCauseWalkFailure,
		}
		g.recordError("Generator.Generate", genErr, nil)
		return "", Result{}, genErr
	}

	var sb strings.Builder
	if err := g.writePreamble(&sb); err != nil {
		return "", Result{}, err
	}

	seenNames := make(map[string]string, len(fixtures))
	active := 0
	skippedException := 0
	skippedMissingRef := 0

	for _, f := range fixtures {
		if firstInput, dup := seenNames[f.TestName()]; dup {
			genErr := &GenerateError{
				Message: fmt.Sprintf(
					"%q and %q both map to test name %q",
					firstInput, f.InputPath(), f.TestName(),
				),
				Cause: ErrCauseNameCollision,
			}
			g.recordError("Generator.Generate", genErr, []metadata.Attribute{
				metadata.NewAttr(metadata.AttrTestName, f.TestName()),
				metadata.NewAttr(metadata.AttrPath, f.InputPath()),
			})
			return "", Result{}, genErr
		}
		seenNames[f.TestName()] = f.InputPath()

		entry, excepted := g.table.Lookup(f.InputPath())
		switch {
		case excepted:
			skippedException++
			writeDeclaration(&sb, f, replaceMode, entry.Message(), true)
		case !f.HasReference():
			skippedMissingRef++
			writeDeclaration(&sb, f, replaceMode, "missing reference image", false)
		default:
			active++
			writeDeclaration(&sb, f, replaceMode, "", false)
		}
	}

	stale := g.reportStaleEntries(fixtures)

	result := NewResult(
		len(fixtures),
		active,
		skippedException,
		skippedMissingRef,
		stale,
	)
	return sb.String(), result, nil
}

// Write generates the manifest and overwrites the artifact at path
// with write-to-temp-then-rename discipline. On any error no partial
// manifest is left behind.
func (g *Generator) Write(path string, roots fixture.Roots, replaceMode bool) (Result, failure.ClassifiedError) {
	text, result, err := g.Generate(roots, replaceMode)
	if err != nil {
		return Result{}, err
	}

	if writeErr := fileutil.WriteFileAtomic(path, []byte(text)); writeErr != nil {
		genErr := &GenerateError{
			Message: writeErr.Error(),
			Cause:   ErrCauseWriteFailure,
		}
		g.recordError("Generator.Write", genErr, []metadata.Attribute{
			metadata.NewAttr(metadata.AttrWritePath, path),
		})
		return Result{}, genErr
	}

	g.metadataSink.RecordArtifact(
		metadata.ArtifactManifest,
		path,
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrWritePath, path),
		},
	)
	return result, nil
}

func (g *Generator) writePreamble(sb *strings.Builder) failure.ClassifiedError {
	tmpl, err := template.New("preamble").Parse(preambleTemplate)
	if err != nil {
		return &GenerateError{
			Message: err.Error(),
			Cause:   ErrCauseWriteFailure,
		}
	}
	data := preambleData{
		Tool:    "fixturegen",
		Version: g.version,
		Package: g.packageName,
	}
	if err := tmpl.Execute(sb, data); err != nil {
		return &GenerateError{
			Message: err.Error(),
			Cause:   ErrCauseWriteFailure,
		}
	}
	return nil
}

// writeDeclaration emits one test function. A non-empty skipReason
// marks the declaration skipped; withComment additionally records the
// reason as a comment above the declaration (exception-table skips).
// The run invocation is always emitted so every declaration stays
// bound to its fixture paths even while skipped.
func writeDeclaration(sb *strings.Builder, f fixture.Fixture, replaceMode bool, skipReason string, withComment bool) {
	sb.WriteString("\n")
	if withComment {
		fmt.Fprintf(sb, "// %s: %s\n", f.InputPath(), skipReason)
	}
	fmt.Fprintf(sb, "func Test_%s(t *testing.T) {\n", f.TestName())
	if skipReason != "" {
		fmt.Fprintf(sb, "\tt.Skip(%q)\n", skipReason)
	}
	fmt.Fprintf(
		sb,
		"\tif code := run(%q, %q, %q, %t); code != 0 {\n",
		f.InputPath(), f.ReferencePath(), f.DiffPath(), replaceMode,
	)
	sb.WriteString("\t\tt.Fatalf(\"pixel difference: %d\", code)\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n")
}

// reportStaleEntries records exception entries matching nothing in the
// walked corpus. Inert for generation by contract; surfaced through
// the metadata sink so the operator sees the drift.
func (g *Generator) reportStaleEntries(fixtures []fixture.Fixture) []string {
	inputPaths := make([]string, 0, len(fixtures))
	for _, f := range fixtures {
		inputPaths = append(inputPaths, f.InputPath())
	}

	staleEntries := g.table.Verify(inputPaths)
	stale := make([]string, 0, len(staleEntries))
	for _, e := range staleEntries {
		stale = append(stale, e.Path())
		g.metadataSink.RecordError(
			time.Now(),
			"manifest",
			"Generator.Generate",
			metadata.CauseCorpusInconsistent,
			"exception entry matches no fixture",
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrPath, e.Path()),
				metadata.NewAttr(metadata.AttrReason, e.Message()),
			},
		)
	}
	return stale
}

func (g *Generator) recordError(action string, err *GenerateError, attrs []metadata.Attribute) {
	g.metadataSink.RecordError(
		time.Now(),
		"manifest",
		action,
		mapGenerateErrorToMetadataCause(err),
		err.Error(),
		attrs,
	)
}
