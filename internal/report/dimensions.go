package report

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// displayWidth is the rendered width of each image column.
const displayWidth = 200

// svgDimensions reads the intrinsic size of an SVG document from the
// width/height attributes of the root element, falling back to the
// viewBox when they are missing or unit-less parsing fails.
func svgDimensions(svgContent []byte) (width float64, height float64, ok bool) {
	doc, err := xmlquery.Parse(bytes.NewReader(svgContent))
	if err != nil {
		return 0, 0, false
	}
	root := xmlquery.FindOne(doc, "//svg")
	if root == nil {
		return 0, 0, false
	}

	width = parseLength(root.SelectAttr("width"))
	height = parseLength(root.SelectAttr("height"))
	if width > 0 && height > 0 {
		return width, height, true
	}

	viewBox := strings.Fields(strings.ReplaceAll(root.SelectAttr("viewBox"), ",", " "))
	if len(viewBox) == 4 {
		width = parseLength(viewBox[2])
		height = parseLength(viewBox[3])
		if width > 0 && height > 0 {
			return width, height, true
		}
	}
	return 0, 0, false
}

// parseLength reads a CSS-style length, ignoring a trailing px unit.
// Percentages and other units are treated as unparseable.
func parseLength(raw string) float64 {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "px"))
	if raw == "" || strings.HasSuffix(raw, "%") {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

// displaySize scales intrinsic dimensions to the fixed column width,
// preserving aspect ratio. Unknown dimensions render square.
func displaySize(svgContent []byte) (width int, height int) {
	w, h, ok := svgDimensions(svgContent)
	if !ok {
		return displayWidth, displayWidth
	}
	scaled := float64(displayWidth) * h / w
	return displayWidth, int(scaled + 0.5)
}
