// Package scenario describes plan requests and the Lisp DSL that builds
// them. A scenario bundles the wall dimensions, the tool width and the
// obstacle list; validation checks the geometry against the planner's input
// contract before any planning happens.
package scenario

import (
	"github.com/ocarden/wallplan/pkg/plan"
)

// DefaultToolWidth is used when a scenario does not set a tool width.
const DefaultToolWidth = 0.2

// Scenario is one plan request: a wall, a tool and the obstacles on the
// wall. Values are meters.
type Scenario struct {
	WallWidth  float64     `json:"wallWidth"`
	WallHeight float64     `json:"wallHeight"`
	ToolWidth  float64     `json:"toolWidth"`
	Obstacles  []plan.Rect `json:"obstacles"`
}

// New returns an empty scenario with the default tool width.
func New() *Scenario {
	return &Scenario{ToolWidth: DefaultToolWidth}
}

// Params converts the scenario into planner parameters.
func (s *Scenario) Params() plan.Params {
	return plan.NewParams(s.WallWidth, s.WallHeight, s.Obstacles, s.ToolWidth)
}
