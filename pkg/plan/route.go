package plan

import (
	"fmt"
	"math"
)

// RouteOutcome names how a horizontal move was resolved.
type RouteOutcome int

const (
	// RouteDirect means the straight move is clear, or short enough to
	// need no waypoints at all.
	RouteDirect RouteOutcome = iota
	// RouteDetour means the move goes around the obstacle: vertical to a
	// detour height, horizontal past the obstacle, vertical back.
	RouteDetour
	// RouteSideStep means there is no room above or below the obstacle;
	// a single waypoint just past the obstacle's near side is emitted.
	// The move that follows may be diagonal.
	RouteSideStep
	// RouteBlocked means no detour was found. The move is attempted
	// directly and may cross a safety margin.
	RouteBlocked
)

func (o RouteOutcome) String() string {
	switch o {
	case RouteDirect:
		return "direct"
	case RouteDetour:
		return "detour"
	case RouteSideStep:
		return "side-step"
	case RouteBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("RouteOutcome(%d)", int(o))
	}
}

// Route plans the horizontal move from startX to endX at height y and
// returns the waypoints to append to the path. Only the first obstacle in
// input order that blocks the move is considered, even when several do;
// multi-obstacle detours are a documented limitation of the planner.
func (p Params) Route(startX, endX, y float64) ([]Point, RouteOutcome) {
	if math.Abs(startX-endX) < PositionTolerance {
		return nil, RouteDirect
	}

	blocking := p.blockingObstacles(startX, endX, y)
	if len(blocking) == 0 {
		return []Point{{X: endX, Y: y}}, RouteDirect
	}

	return p.aroundObstacle(startX, endX, y, blocking[0])
}

// blockingObstacles returns the obstacles whose safety-margin-grown bounds
// cross the horizontal move, in input order.
func (p Params) blockingObstacles(startX, endX, y float64) []Rect {
	minX := math.Min(startX, endX)
	maxX := math.Max(startX, endX)

	var blocking []Rect
	for _, obs := range p.Obstacles {
		if obs.expand(p.SafetyMargin).IntersectsHorizontalLine(y, minX, maxX) {
			blocking = append(blocking, obs)
		}
	}
	return blocking
}

// aroundObstacle routes the move around a single obstacle. It prefers a
// vertical detour above or below the grown obstacle; when neither side has
// room it falls back to a horizontal side-step past the obstacle, and when
// even that is impossible it reports the move as blocked.
func (p Params) aroundObstacle(startX, endX, y float64, obs Rect) ([]Point, RouteOutcome) {
	grown := obs.expand(p.SafetyMargin)

	spaceAbove := p.WallHeight - (grown.Y + grown.Height)
	spaceBelow := grown.Y

	above := func() float64 {
		return math.Min(p.WallHeight-p.ToolRadius, grown.Y+grown.Height+BaseClearance)
	}
	below := func() float64 {
		return math.Max(p.ToolRadius, grown.Y-BaseClearance)
	}

	detourY := math.NaN()
	switch {
	case spaceAbove > p.SafetyMargin && spaceBelow > p.SafetyMargin:
		// Both sides have room; take the one nearer the tool.
		if y > obs.Y+obs.Height/2 {
			detourY = above()
		} else {
			detourY = below()
		}
	case spaceAbove > p.SafetyMargin:
		detourY = above()
	case spaceBelow > p.SafetyMargin:
		detourY = below()
	}

	if !math.IsNaN(detourY) {
		return []Point{
			{X: startX, Y: detourY},
			{X: endX, Y: detourY},
			{X: endX, Y: y},
		}, RouteDetour
	}

	// No vertical room on either side; side-step past the obstacle at the
	// same height when the wall leaves space for it.
	if startX < endX {
		if grown.X+grown.Width < p.WallWidth-p.ToolRadius {
			return []Point{{X: grown.X + grown.Width + BaseClearance, Y: y}}, RouteSideStep
		}
	} else if grown.X > p.ToolRadius {
		return []Point{{X: grown.X - BaseClearance, Y: y}}, RouteSideStep
	}

	return nil, RouteBlocked
}
