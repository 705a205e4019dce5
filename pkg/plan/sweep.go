package plan

// SweepLines returns the scan heights for the wall, bottom to top. Lines
// start one tool radius above the bottom edge so the tool's extent begins
// exactly at the edge, and advance by a full tool width. A final line at
// one radius below the top edge is appended when the regular spacing would
// leave an uncovered strip wider than the overlap allowance.
//
// A wall shorter than the tool width yields zero or one lines; callers must
// tolerate an empty result.
func (p Params) SweepLines() []float64 {
	var lines []float64

	y := p.ToolRadius
	for y <= p.WallHeight-p.ToolRadius {
		lines = append(lines, y)
		y += p.ToolWidth
	}

	if len(lines) > 0 && lines[len(lines)-1] < p.WallHeight-p.ToolRadius {
		finalY := p.WallHeight - p.ToolRadius
		if finalY > lines[len(lines)-1]+p.ToolWidth*sweepOverlapFactor {
			lines = append(lines, finalY)
		}
	}

	return lines
}
