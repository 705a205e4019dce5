// Package store persists planned trajectories in an embedded bbolt
// database. Records carry their metrics; records written by older versions
// without cached metrics get them recomputed on read.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ocarden/wallplan/pkg/plan"
	"github.com/ocarden/wallplan/pkg/scenario"
)

// ErrNotFound is returned when no trajectory exists under the given ID.
var ErrNotFound = errors.New("trajectory not found")

var bucketTrajectories = []byte("trajectories")

// Trajectory is one stored planning run.
type Trajectory struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"`

	WallWidth  float64      `json:"wallWidth"`
	WallHeight float64      `json:"wallHeight"`
	ToolWidth  float64      `json:"toolWidth"`
	Obstacles  []plan.Rect  `json:"obstacles"`
	Path       []plan.Point `json:"path"`

	CoverageArea float64 `json:"coverageArea"`
	PathLength   float64 `json:"pathLength"`
	Efficiency   float64 `json:"efficiency"`
	BestEffort   bool    `json:"bestEffort"`
}

// Store wraps the bbolt database holding trajectories.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTrajectories)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the trajectory, assigning an ID and creation time when the
// record has none.
func (s *Store) Save(t *Trajectory) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}

	buf, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode trajectory: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTrajectories).Put([]byte(t.ID), buf)
	})
}

// Get returns the trajectory with the given ID, backfilling metrics that
// were not stored.
func (s *Store) Get(id string) (*Trajectory, error) {
	var t *Trajectory

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketTrajectories).Get([]byte(id))
		if raw == nil {
			return ErrNotFound
		}
		var rec Trajectory
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decode trajectory %s: %w", id, err)
		}
		t = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	backfill(t)
	return t, nil
}

// List returns all trajectories, newest first, with missing metrics
// backfilled. Records that fail to decode are skipped rather than failing
// the whole listing.
func (s *Store) List() ([]*Trajectory, error) {
	var list []*Trajectory

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTrajectories).ForEach(func(k, v []byte) error {
			var rec Trajectory
			if err := json.Unmarshal(v, &rec); err != nil {
				return nil
			}
			list = append(list, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	for _, t := range list {
		backfill(t)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// Delete removes the trajectory with the given ID.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTrajectories)
		if b.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(id))
	})
}

// backfill fills in metrics for records stored before metrics were cached.
// A zero tool width is treated as the historical default.
func backfill(t *Trajectory) {
	if t.ToolWidth == 0 {
		t.ToolWidth = scenario.DefaultToolWidth
	}
	if t.CoverageArea == 0 && len(t.Path) > 1 {
		t.CoverageArea = plan.CoverageFromPath(t.Path, t.ToolWidth)
	}
	if t.PathLength == 0 && len(t.Path) > 1 {
		t.PathLength = plan.PathLength(t.Path)
	}
	if t.Efficiency == 0 && t.CoverageArea > 0 {
		t.Efficiency = plan.Efficiency(t.WallWidth, t.WallHeight, t.Obstacles, t.CoverageArea)
	}
}
