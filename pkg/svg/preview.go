package svg

import (
	"strings"

	"github.com/jbeda/geom"

	"github.com/ocarden/wallplan/pkg/plan"
	"github.com/ocarden/wallplan/pkg/scenario"
)

// Render draws the wall outline, obstacles and planned path as a complete
// SVG document and returns it as a string.
func Render(sc *scenario.Scenario, path []plan.Point) string {
	var b strings.Builder
	w := NewWriter(&b)

	viewBox := geom.Rect{
		Min: geom.Coord{X: -viewMargin, Y: -viewMargin},
		Max: geom.Coord{X: sc.WallWidth + viewMargin, Y: sc.WallHeight + viewMargin},
	}
	w.Start(viewBox, defaultStyle)

	// SVG Y grows downward; wall Y grows upward.
	flip := func(p plan.Point) geom.Coord {
		return geom.Coord{X: p.X, Y: sc.WallHeight - p.Y}
	}

	w.Rect(geom.Rect{
		Min: geom.Coord{X: 0, Y: 0},
		Max: geom.Coord{X: sc.WallWidth, Y: sc.WallHeight},
	}, wallStyle)

	for _, obs := range sc.Obstacles {
		top := flip(plan.Point{X: obs.X, Y: obs.Y + obs.Height})
		w.Rect(geom.Rect{
			Min: top,
			Max: geom.Coord{X: top.X + obs.Width, Y: top.Y + obs.Height},
		}, obstacleStyle)
	}

	if len(path) > 1 {
		w.StartPath(flip(path[0]), pathStyle)
		for _, p := range path[1:] {
			w.PathLineTo(flip(p))
		}
		w.EndPath()
	}

	w.End()
	return b.String()
}
