package store

// secondsPerMeter is the rough speed estimate used for time projections.
const secondsPerMeter = 2.0

// MetricsDetail expands a stored trajectory's metrics with the derived
// areas and time estimates shown in the metrics panel.
type MetricsDetail struct {
	TrajectoryID string `json:"trajectoryId"`

	TotalWallArea float64 `json:"totalWallArea"`
	ObstacleArea  float64 `json:"obstacleArea"`
	AvailableArea float64 `json:"availableArea"`

	CoverageArea    float64 `json:"coverageArea"`
	PathLength      float64 `json:"pathLength"`
	Efficiency      float64 `json:"efficiency"`
	CoveragePercent float64 `json:"coveragePercent"`
	PathDensity     float64 `json:"pathDensity"`

	ToolWidth        float64 `json:"toolWidth"`
	EstimatedSeconds float64 `json:"estimatedSeconds"`
}

// Metrics returns the detailed metrics for a stored trajectory.
func (s *Store) Metrics(id string) (*MetricsDetail, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	totalArea := t.WallWidth * t.WallHeight
	obstacleArea := 0.0
	for _, obs := range t.Obstacles {
		obstacleArea += obs.Area()
	}
	availableArea := totalArea - obstacleArea

	d := &MetricsDetail{
		TrajectoryID:     t.ID,
		TotalWallArea:    totalArea,
		ObstacleArea:     obstacleArea,
		AvailableArea:    availableArea,
		CoverageArea:     t.CoverageArea,
		PathLength:       t.PathLength,
		Efficiency:       t.Efficiency,
		ToolWidth:        t.ToolWidth,
		EstimatedSeconds: t.PathLength * secondsPerMeter,
	}
	if availableArea > 0 {
		d.CoveragePercent = t.CoverageArea / availableArea * 100
	}
	if totalArea > 0 {
		d.PathDensity = t.PathLength / totalArea
	}
	return d, nil
}
