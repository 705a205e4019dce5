package plan

// Movement and safety constants shared by every planning run.
const (
	// BaseClearance is the clearance kept around obstacles on top of the
	// tool radius, in meters.
	BaseClearance = 0.05

	// PositionTolerance is the distance below which two positions count
	// as the same. Moves shorter than this are not recorded.
	PositionTolerance = 0.01

	// maxPaintDistance bounds how long a horizontal move may be to count
	// as a paint stroke when reconstructing coverage from a bare path.
	// Longer moves are treated as travel, not painting.
	maxPaintDistance = 2.0

	// sweepOverlapFactor controls the extra top sweep line: it is added
	// only when the uncovered strip at the top exceeds this fraction of
	// the tool width.
	sweepOverlapFactor = 0.1
)

// Params holds the wall geometry, obstacle set and tool configuration for
// one planning run, together with the margins derived from the tool width.
// Build it with NewParams so the derived fields stay consistent.
type Params struct {
	WallWidth  float64
	WallHeight float64
	Obstacles  []Rect
	ToolWidth  float64

	// ToolRadius is how far the tool extends from its center.
	ToolRadius float64
	// SafetyMargin is the total margin kept around obstacles.
	SafetyMargin float64
	// MinGapWidth is the narrowest gap the tool can traverse safely.
	MinGapWidth float64
}

// NewParams derives the tool margins from the tool width. The caller is
// responsible for validating the geometry beforehand: obstacles must lie
// within the wall and must not overlap each other.
func NewParams(wallWidth, wallHeight float64, obstacles []Rect, toolWidth float64) Params {
	radius := toolWidth / 2
	return Params{
		WallWidth:    wallWidth,
		WallHeight:   wallHeight,
		Obstacles:    obstacles,
		ToolWidth:    toolWidth,
		ToolRadius:   radius,
		SafetyMargin: radius + BaseClearance,
		MinGapWidth:  toolWidth + 2*BaseClearance,
	}
}
