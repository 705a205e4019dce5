package scenario

import "fmt"

// Application limits for plan requests.
const (
	MaxWallWidth  = 50.0
	MaxWallHeight = 20.0
	MaxToolWidth  = 1.0
	MaxObstacles  = 20
)

// Severity indicates whether a validation finding blocks planning or is
// merely advisory.
type Severity int

const (
	SeverityError   Severity = iota // blocks planning
	SeverityWarning                 // informational
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result.
type Finding struct {
	// Obstacle is the index of the offending obstacle, or -1 for
	// scenario-level findings.
	Obstacle int
	Message  string
	Severity Severity
}

func (f Finding) Error() string {
	if f.Obstacle < 0 {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] obstacle %d: %s", f.Severity, f.Obstacle, f.Message)
}

// Validate checks the scenario against the planner's input contract and
// returns every finding, not just the first. A scenario with no
// error-severity findings is safe to plan.
func Validate(s *Scenario) []Finding {
	var findings []Finding
	findings = append(findings, validateWall(s)...)
	findings = append(findings, validateObstacleBounds(s)...)
	findings = append(findings, validateObstacleOverlap(s)...)
	findings = append(findings, validateCrowding(s)...)
	return findings
}

// Valid reports whether the findings contain no errors.
func Valid(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

func validateWall(s *Scenario) []Finding {
	var findings []Finding

	if s.WallWidth <= 0 {
		findings = append(findings, Finding{
			Obstacle: -1,
			Message:  fmt.Sprintf("wall width %.3f must be positive", s.WallWidth),
			Severity: SeverityError,
		})
	} else if s.WallWidth > MaxWallWidth {
		findings = append(findings, Finding{
			Obstacle: -1,
			Message:  fmt.Sprintf("wall width %.3f exceeds the %.0fm limit", s.WallWidth, MaxWallWidth),
			Severity: SeverityError,
		})
	}

	if s.WallHeight <= 0 {
		findings = append(findings, Finding{
			Obstacle: -1,
			Message:  fmt.Sprintf("wall height %.3f must be positive", s.WallHeight),
			Severity: SeverityError,
		})
	} else if s.WallHeight > MaxWallHeight {
		findings = append(findings, Finding{
			Obstacle: -1,
			Message:  fmt.Sprintf("wall height %.3f exceeds the %.0fm limit", s.WallHeight, MaxWallHeight),
			Severity: SeverityError,
		})
	}

	if s.ToolWidth <= 0 {
		findings = append(findings, Finding{
			Obstacle: -1,
			Message:  fmt.Sprintf("tool width %.3f must be positive", s.ToolWidth),
			Severity: SeverityError,
		})
	} else if s.ToolWidth > MaxToolWidth {
		findings = append(findings, Finding{
			Obstacle: -1,
			Message:  fmt.Sprintf("tool width %.3f exceeds the %.1fm limit", s.ToolWidth, MaxToolWidth),
			Severity: SeverityError,
		})
	}

	if len(s.Obstacles) > MaxObstacles {
		findings = append(findings, Finding{
			Obstacle: -1,
			Message:  fmt.Sprintf("%d obstacles exceed the limit of %d", len(s.Obstacles), MaxObstacles),
			Severity: SeverityError,
		})
	}

	return findings
}

func validateObstacleBounds(s *Scenario) []Finding {
	var findings []Finding

	for i, obs := range s.Obstacles {
		if obs.X < 0 || obs.Y < 0 {
			findings = append(findings, Finding{
				Obstacle: i,
				Message:  fmt.Sprintf("position (%.3f, %.3f) must be non-negative", obs.X, obs.Y),
				Severity: SeverityError,
			})
		}
		if obs.Width <= 0 || obs.Height <= 0 {
			findings = append(findings, Finding{
				Obstacle: i,
				Message:  fmt.Sprintf("size %.3fx%.3f must be positive", obs.Width, obs.Height),
				Severity: SeverityError,
			})
			continue
		}
		if obs.X+obs.Width > s.WallWidth || obs.Y+obs.Height > s.WallHeight {
			findings = append(findings, Finding{
				Obstacle: i,
				Message:  "extends beyond the wall boundaries",
				Severity: SeverityError,
			})
		}
	}

	return findings
}

func validateObstacleOverlap(s *Scenario) []Finding {
	var findings []Finding

	for i, a := range s.Obstacles {
		for j := i + 1; j < len(s.Obstacles); j++ {
			if a.Overlaps(s.Obstacles[j]) {
				findings = append(findings, Finding{
					Obstacle: i,
					Message:  fmt.Sprintf("overlaps obstacle %d", j),
					Severity: SeverityError,
				})
			}
		}
	}

	return findings
}

// validateCrowding warns when obstacles cover most of the wall; the plan
// will succeed but paint very little.
func validateCrowding(s *Scenario) []Finding {
	if s.WallWidth <= 0 || s.WallHeight <= 0 {
		return nil
	}

	covered := 0.0
	for _, obs := range s.Obstacles {
		covered += obs.Area()
	}
	if covered > 0.5*s.WallWidth*s.WallHeight {
		return []Finding{{
			Obstacle: -1,
			Message:  "obstacles cover more than half the wall; little area remains paintable",
			Severity: SeverityWarning,
		}}
	}
	return nil
}
