/*
Responsibilities
- Emit a side-by-side comparison document for every fixture that has a
  reference image
- Stay purely presentational: no pass/fail logic, no pixel comparison

The document is assembled as Markdown and rendered to a standalone
HTML page. The expected column shows the reference image; the actual
column embeds the SVG itself, which the browser renders, so the page
needs no output from the conversion tool to be useful.
*/
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/rohmanhakim/fixturegen/internal/fixture"
	"github.com/rohmanhakim/fixturegen/internal/metadata"
	"github.com/rohmanhakim/fixturegen/pkg/failure"
	"github.com/rohmanhakim/fixturegen/pkg/fileutil"
)

const pageHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Visual comparison</title>
<style>
body { font-family: sans-serif; }
table { border-collapse: collapse; margin-bottom: 24px; }
td, th { border: 1px solid #ccc; padding: 4px 8px; vertical-align: top; }
img, object { display: block; }
</style>
</head>
<body>
`

const pageFoot = `</body>
</html>
`

type Builder struct {
	metadataSink metadata.MetadataSink
}

func NewBuilder(metadataSink metadata.MetadataSink) Builder {
	return Builder{
		metadataSink: metadataSink,
	}
}

// Build walks the corpus under roots and returns the full HTML
// document text. Fixtures without a reference image are left out
// entirely; there is nothing to compare them against.
func (b *Builder) Build(roots fixture.Roots) (string, failure.ClassifiedError) {
	fixtures, walkErr := fixture.Walk(roots)
	if walkErr != nil {
		return "", b.fail(&ReportError{
			Message: walkErr.Error(),
			Cause:   ErrCauseWalkFailure,
			Path:    roots.FixtureDir,
		})
	}

	var md strings.Builder
	md.WriteString("# Visual comparison\n\n")

	compared := 0
	for _, f := range fixtures {
		if !f.HasReference() {
			continue
		}
		svgContent, readErr := os.ReadFile(roots.Abs(f.InputPath()))
		if readErr != nil {
			return "", b.fail(&ReportError{
				Message: readErr.Error(),
				Cause:   ErrCauseReadFailure,
				Path:    f.InputPath(),
			})
		}
		writeComparisonBlock(&md, f, svgContent)
		compared++
	}

	fmt.Fprintf(&md, "%d fixtures compared.\n", compared)

	return renderPage(md.String()), nil
}

// Write builds the report and overwrites the artifact at path.
func (b *Builder) Write(path string, roots fixture.Roots) failure.ClassifiedError {
	text, err := b.Build(roots)
	if err != nil {
		return err
	}
	if writeErr := fileutil.WriteFileAtomic(path, []byte(text)); writeErr != nil {
		return b.fail(&ReportError{
			Message: writeErr.Error(),
			Cause:   ErrCauseWriteFailure,
			Path:    path,
		})
	}
	b.metadataSink.RecordArtifact(
		metadata.ArtifactVisualReport,
		path,
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrWritePath, path),
		},
	)
	return nil
}

// writeComparisonBlock emits one expected/actual pair. Raw HTML inside
// the Markdown carries the image dimensions; both columns render at
// the same size so differences line up visually.
func writeComparisonBlock(md *strings.Builder, f fixture.Fixture, svgContent []byte) {
	width, height := displaySize(svgContent)

	fmt.Fprintf(md, "## %s\n\n", f.TestName())
	fmt.Fprintf(md, "`%s`\n\n", f.InputPath())
	md.WriteString("| Expected | Actual |\n")
	md.WriteString("| --- | --- |\n")
	fmt.Fprintf(
		md,
		"| <img src=\"%s\" width=\"%d\" height=\"%d\" alt=\"expected\"> | <img src=\"%s\" width=\"%d\" height=\"%d\" alt=\"actual\"> |\n\n",
		f.ReferencePath(), width, height,
		f.InputPath(), width, height,
	)
}

func renderPage(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML([]byte(md), p, renderer)
	return pageHead + string(body) + pageFoot
}

func (b *Builder) fail(err *ReportError) *ReportError {
	b.metadataSink.RecordError(
		time.Now(),
		"report",
		"Builder.Build",
		mapReportErrorToMetadataCause(err),
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrPath, err.Path),
		},
	)
	return err
}
