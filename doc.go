// Package cellgrid provides pooled in-memory containers for simulation-style
// workloads where many small, same-shaped records are created and discarded
// every frame: a bucketed 2-D spatial index, the reusable record pool backing
// it, and a plain dense 2-D grid.
//
// # Quick Start
//
//	grid, _ := cellgrid.NewSpatialGrid2D[*Ship](1280, 720, 64, 64)
//
//	grid.InsertAt(40, 100, ship)
//	ships, _ := grid.At(40, 100)
//	grid.Move(40, 100, 41, 100, ship)
//	grid.RemoveAt(41, 100, ship)
//
// Point queries scan only the bucket owning the coordinate, so their cost
// tracks bucket occupancy rather than the total number of stored values.
// Inserted values are wrapped in records recycled through a free-list pool,
// so steady-state insert/remove churn allocates nothing.
//
// # Sharing a Record Pool
//
// Each index owns a private pool by default. To reuse one free list across
// every index of an element type, construct the pool explicitly:
//
//	ships := cellgrid.NewRecordPool[*Ship]()
//	ground, _ := cellgrid.NewSpatialGrid2D(1280, 720, 64, 64, cellgrid.WithRecordPool(ships))
//	air, _ := cellgrid.NewSpatialGrid2D(1280, 720, 128, 128, cellgrid.WithRecordPool(ships))
//
// # Checked vs Unchecked Pools
//
// The pool subpackage ships two variants with one contract: pool.Pool skips
// all identity bookkeeping for throughput, pool.CheckedPool detects factory
// singletons, foreign releases, and double releases. Develop against the
// checked variant, ship the unchecked one.
//
// # Concurrency
//
// Everything in this module is single-threaded. Operations never
// block, suspend, or perform I/O; concurrent use of one instance from
// multiple goroutines is undefined behavior. Distinct instances are fully
// independent.
package cellgrid
