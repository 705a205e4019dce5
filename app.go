package main

import (
	"context"
	"errors"
	"log"

	"github.com/ocarden/wallplan/pkg/plan"
	"github.com/ocarden/wallplan/pkg/scenario"
	"github.com/ocarden/wallplan/pkg/scene"
	"github.com/ocarden/wallplan/pkg/store"
	"github.com/ocarden/wallplan/pkg/svg"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *scenario.Engine
	store  *store.Store
	dbPath string
}

// FindingData is a JSON-serializable validation finding for the frontend.
type FindingData struct {
	Obstacle int    `json:"obstacle"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// PlanRequest describes the wall the frontend wants planned.
type PlanRequest struct {
	WallWidth  float64     `json:"wallWidth"`
	WallHeight float64     `json:"wallHeight"`
	ToolWidth  float64     `json:"toolWidth"`
	Obstacles  []plan.Rect `json:"obstacles"`
}

// PlanResponse is the full planning result returned to the frontend. On
// validation failure Findings carries the errors and Trajectory is nil.
type PlanResponse struct {
	Trajectory  *store.Trajectory `json:"trajectory"`
	TotalPoints int               `json:"totalPoints"`
	BestEffort  bool              `json:"bestEffort"`
	Findings    []FindingData     `json:"findings"`
}

// ScriptResult is the scenario a script evaluated to, plus any errors.
type ScriptResult struct {
	Scenario *scenario.Scenario `json:"scenario"`
	Errors   []EvalErrorData    `json:"errors"`
}

// MeshRequest asks for a 3D mockup of a wall layout.
type MeshRequest struct {
	WallWidth  float64     `json:"wallWidth"`
	WallHeight float64     `json:"wallHeight"`
	Obstacles  []plan.Rect `json:"obstacles"`
	Cells      int         `json:"cells"`
}

// NewApp creates a new App storing trajectories at dbPath.
func NewApp(dbPath string) *App {
	return &App{
		engine: scenario.NewEngine(),
		dbPath: dbPath,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown closes the trajectory store.
func (a *App) shutdown(ctx context.Context) {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("store close error: %v", err)
		}
	}
}

// ensureStore opens the database lazily so a locked or unwritable file
// surfaces as a binding error rather than killing startup.
func (a *App) ensureStore() (*store.Store, error) {
	if a.store == nil {
		s, err := store.Open(a.dbPath)
		if err != nil {
			return nil, err
		}
		a.store = s
	}
	return a.store, nil
}

func findingData(findings []scenario.Finding) []FindingData {
	out := []FindingData{}
	for _, f := range findings {
		out = append(out, FindingData{
			Obstacle: f.Obstacle,
			Message:  f.Message,
			Severity: f.Severity.String(),
		})
	}
	return out
}

func (a *App) planScenario(sc *scenario.Scenario) PlanResponse {
	result := PlanResponse{Findings: []FindingData{}}

	findings := scenario.Validate(sc)
	result.Findings = findingData(findings)
	if !scenario.Valid(findings) {
		return result
	}

	res := plan.PlanCoverage(sc.WallWidth, sc.WallHeight, sc.Obstacles, sc.ToolWidth)

	rec := &store.Trajectory{
		WallWidth:    sc.WallWidth,
		WallHeight:   sc.WallHeight,
		ToolWidth:    sc.ToolWidth,
		Obstacles:    sc.Obstacles,
		Path:         res.Path,
		CoverageArea: res.CoverageArea,
		PathLength:   res.PathLength,
		Efficiency:   res.Efficiency,
		BestEffort:   res.BestEffort,
	}

	s, err := a.ensureStore()
	if err != nil {
		log.Printf("open store error: %v", err)
		result.Findings = append(result.Findings, FindingData{
			Obstacle: -1,
			Message:  "could not open trajectory store: " + err.Error(),
			Severity: scenario.SeverityError.String(),
		})
		return result
	}
	if err := s.Save(rec); err != nil {
		log.Printf("save trajectory error: %v", err)
		result.Findings = append(result.Findings, FindingData{
			Obstacle: -1,
			Message:  "could not save trajectory: " + err.Error(),
			Severity: scenario.SeverityError.String(),
		})
		return result
	}

	result.Trajectory = rec
	result.TotalPoints = len(res.Path)
	result.BestEffort = res.BestEffort
	return result
}

// PlanTrajectory validates the request, plans a coverage path and persists
// the result. This is the primary binding called by the frontend form.
func (a *App) PlanTrajectory(req PlanRequest) PlanResponse {
	sc := scenario.New()
	sc.WallWidth = req.WallWidth
	sc.WallHeight = req.WallHeight
	sc.Obstacles = req.Obstacles
	if req.ToolWidth > 0 {
		sc.ToolWidth = req.ToolWidth
	}
	return a.planScenario(sc)
}

// EvaluateScript evaluates scenario script source without planning, so the
// editor can live-check layouts.
func (a *App) EvaluateScript(source string) ScriptResult {
	result := ScriptResult{Errors: []EvalErrorData{}}

	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("EvaluateScript fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	for _, e := range evalErrs {
		result.Errors = append(result.Errors, EvalErrorData{Line: e.Line, Message: e.Message})
	}
	if len(result.Errors) == 0 {
		result.Scenario = sc
	}
	return result
}

// PlanScript evaluates scenario script source and plans the resulting
// layout. Script errors come back as findings so the frontend shows them
// in the same panel as validation errors.
func (a *App) PlanScript(source string) PlanResponse {
	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Printf("PlanScript fatal error: %v", err)
		return PlanResponse{Findings: []FindingData{{
			Obstacle: -1,
			Message:  err.Error(),
			Severity: scenario.SeverityError.String(),
		}}}
	}
	if len(evalErrs) > 0 {
		result := PlanResponse{Findings: []FindingData{}}
		for _, e := range evalErrs {
			result.Findings = append(result.Findings, FindingData{
				Obstacle: -1,
				Message:  e.Message,
				Severity: scenario.SeverityError.String(),
			})
		}
		return result
	}
	return a.planScenario(sc)
}

// ListTrajectories returns all stored trajectories, newest first.
func (a *App) ListTrajectories() ([]*store.Trajectory, error) {
	s, err := a.ensureStore()
	if err != nil {
		return nil, err
	}
	return s.List()
}

// GetTrajectory returns one stored trajectory.
func (a *App) GetTrajectory(id string) (*store.Trajectory, error) {
	s, err := a.ensureStore()
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// TrajectoryMetrics returns the detailed metrics for a stored trajectory.
func (a *App) TrajectoryMetrics(id string) (*store.MetricsDetail, error) {
	s, err := a.ensureStore()
	if err != nil {
		return nil, err
	}
	return s.Metrics(id)
}

// DeleteTrajectory removes a stored trajectory.
func (a *App) DeleteTrajectory(id string) error {
	s, err := a.ensureStore()
	if err != nil {
		return err
	}
	if err := s.Delete(id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("delete trajectory error: %v", err)
		}
		return err
	}
	return nil
}

// PreviewSVG renders a stored trajectory as an SVG document.
func (a *App) PreviewSVG(id string) (string, error) {
	s, err := a.ensureStore()
	if err != nil {
		return "", err
	}
	t, err := s.Get(id)
	if err != nil {
		return "", err
	}

	sc := &scenario.Scenario{
		WallWidth:  t.WallWidth,
		WallHeight: t.WallHeight,
		ToolWidth:  t.ToolWidth,
		Obstacles:  t.Obstacles,
	}
	return svg.Render(sc, t.Path), nil
}

// WallMesh builds a 3D mockup of the wall layout for the viewer.
func (a *App) WallMesh(req MeshRequest) (*scene.Mesh, error) {
	sc := scenario.New()
	sc.WallWidth = req.WallWidth
	sc.WallHeight = req.WallHeight
	sc.Obstacles = req.Obstacles

	solid, err := scene.Build(sc)
	if err != nil {
		log.Printf("WallMesh build error: %v", err)
		return nil, err
	}
	return scene.ToMesh(solid, req.Cells), nil
}
