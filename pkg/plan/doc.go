// Package plan computes continuous coverage paths for a fixed-width tool
// sweeping a rectangular wall around axis-aligned rectangular obstacles.
//
// The planner walks horizontal sweep lines bottom to top in a boustrophedon
// (back and forth) pattern. On each line it paints the free segments left
// after obstacles are grown by a safety margin, routing around blocking
// obstacles between segments, and reports the covered area, path length and
// coverage efficiency of the finished path.
//
// The algorithm is a deterministic, greedy, single-pass heuristic. It reacts
// to one blocking obstacle at a time and does not attempt globally optimal
// routing; when no safe detour exists the move is kept and the result is
// marked best-effort.
package plan
