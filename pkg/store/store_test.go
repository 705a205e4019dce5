package store

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/ocarden/wallplan/pkg/plan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "trajectories.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTrajectory() *Trajectory {
	res := plan.PlanCoverage(4, 3, nil, 1.0)
	return &Trajectory{
		WallWidth:    4,
		WallHeight:   3,
		ToolWidth:    1.0,
		Path:         res.Path,
		CoverageArea: res.CoverageArea,
		PathLength:   res.PathLength,
		Efficiency:   res.Efficiency,
	}
}

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	s := openTestStore(t)

	rec := sampleTrajectory()
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected an assigned ID")
	}
	if rec.CreatedAt == 0 {
		t.Error("expected an assigned creation time")
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	rec := sampleTrajectory()
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Get(rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.WallWidth != 4 || got.WallHeight != 3 {
		t.Errorf("unexpected wall: %vx%v", got.WallWidth, got.WallHeight)
	}
	if len(got.Path) != len(rec.Path) {
		t.Errorf("expected %d path points, got %d", len(rec.Path), len(got.Path))
	}
	if math.Abs(got.CoverageArea-rec.CoverageArea) > 1e-9 {
		t.Errorf("coverage area changed: %v != %v", got.CoverageArea, rec.CoverageArea)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Get("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestGetBackfillsMetrics stores a record the way an old version would
// have: path only, no cached metrics, no tool width. Reading it must
// reconstruct all three metrics from the path.
func TestGetBackfillsMetrics(t *testing.T) {
	s := openTestStore(t)

	rec := &Trajectory{
		ID:         "legacy",
		CreatedAt:  1,
		WallWidth:  2,
		WallHeight: 1,
		Path: []plan.Point{
			{X: 0, Y: 0.1}, {X: 1, Y: 0.1},
			{X: 1, Y: 0.3}, {X: 0, Y: 0.3},
		},
	}
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Get("legacy")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ToolWidth != 0.2 {
		t.Errorf("expected default tool width 0.2, got %v", got.ToolWidth)
	}
	// Two 1m strokes at 0.2m width.
	if math.Abs(got.CoverageArea-0.4) > 1e-9 {
		t.Errorf("expected backfilled coverage 0.4, got %v", got.CoverageArea)
	}
	// 1 + 0.2 + 1 of moves.
	if math.Abs(got.PathLength-2.2) > 1e-9 {
		t.Errorf("expected backfilled length 2.2, got %v", got.PathLength)
	}
	if math.Abs(got.Efficiency-0.2) > 1e-9 {
		t.Errorf("expected backfilled efficiency 0.2, got %v", got.Efficiency)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)

	for i, created := range []int64{100, 300, 200} {
		rec := sampleTrajectory()
		rec.ID = string(rune('a' + i))
		rec.CreatedAt = created
		if err := s.Save(rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	if list[0].CreatedAt != 300 || list[1].CreatedAt != 200 || list[2].CreatedAt != 100 {
		t.Errorf("unexpected order: %d, %d, %d", list[0].CreatedAt, list[1].CreatedAt, list[2].CreatedAt)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	rec := sampleTrajectory()
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for double delete, got %v", err)
	}
}

func TestMetricsDetail(t *testing.T) {
	s := openTestStore(t)

	rec := sampleTrajectory()
	rec.Obstacles = []plan.Rect{{X: 1, Y: 1, Width: 1, Height: 1}}
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	d, err := s.Metrics(rec.ID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if d.TotalWallArea != 12 {
		t.Errorf("expected wall area 12, got %v", d.TotalWallArea)
	}
	if d.ObstacleArea != 1 {
		t.Errorf("expected obstacle area 1, got %v", d.ObstacleArea)
	}
	if d.AvailableArea != 11 {
		t.Errorf("expected available area 11, got %v", d.AvailableArea)
	}
	wantPercent := rec.CoverageArea / 11 * 100
	if math.Abs(d.CoveragePercent-wantPercent) > 1e-9 {
		t.Errorf("expected coverage percent %v, got %v", wantPercent, d.CoveragePercent)
	}
	if math.Abs(d.EstimatedSeconds-rec.PathLength*2) > 1e-9 {
		t.Errorf("expected time estimate %v, got %v", rec.PathLength*2, d.EstimatedSeconds)
	}
}
