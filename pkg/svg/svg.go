// Package svg renders scenarios and planned paths as SVG documents for the
// frontend preview. Coordinates are flipped so the wall's bottom edge sits
// at the bottom of the image.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// Element styles. Stroke widths are in wall meters since the viewBox maps
// meters directly to user units.
const (
	defaultStyle  = "stroke-width: 0.02; stroke-linecap: round; fill: none"
	wallStyle     = "stroke: #424242"
	obstacleStyle = "stroke: #c0392b; fill: #f5b7b1"
	pathStyle     = "stroke: #2471a3"
)

// viewMargin is the blank border around the wall, in meters.
const viewMargin = 0.2

// Writer emits SVG elements to an underlying stream.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w}
}

func (s *Writer) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.w, format, a...)
}

// extraparams renders trailing style/attribute arguments: strings
// containing '=' pass through as attributes, everything else becomes a
// style attribute.
func extraparams(s []string) string {
	ep := ""
	for i := 0; i < len(s); i++ {
		if strings.Index(s[i], "=") > 0 {
			ep += s[i] + " "
		} else if len(s[i]) > 0 {
			ep += fmt.Sprintf("style='%s' ", s[i])
		}
	}
	return ep
}

// Start opens the document with the given viewBox.
func (s *Writer) Start(viewBox geom.Rect, extra ...string) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(extra))
}

// End closes the document.
func (s *Writer) End() {
	s.printf("</svg>\n")
}

// Line draws a straight line between two points.
func (s *Writer) Line(p1, p2 geom.Coord, extra ...string) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, extraparams(extra))
}

// Rect draws a rectangle.
func (s *Writer) Rect(r geom.Rect, extra ...string) {
	s.printf("<rect x='%f' y='%f' width='%f' height='%f' %s/>\n",
		r.Min.X, r.Min.Y, r.Width(), r.Height(), extraparams(extra))
}

// StartPath opens a path at p1.
func (s *Writer) StartPath(p1 geom.Coord, extra ...string) {
	s.printf("<path %sd='M%f,%f", extraparams(extra), p1.X, p1.Y)
}

// PathLineTo extends the open path with a line to p.
func (s *Writer) PathLineTo(p geom.Coord) {
	s.printf(" L%f,%f", p.X, p.Y)
}

// EndPath closes the open path element.
func (s *Writer) EndPath() {
	s.printf("'/>\n")
}
