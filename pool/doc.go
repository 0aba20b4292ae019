// Package pool provides growable free-list object pools for amortizing the
// allocation cost of short-lived records on hot insert/remove paths.
//
// Two variants share one contract. Pool is the unchecked variant: no
// bookkeeping beyond a free-slot cursor, no error returns, maximum
// throughput. CheckedPool additionally tracks every record it has ever
// produced and rejects identity misuse (duplicate factory output, foreign or
// double release). Validate against CheckedPool during development, then
// switch to Pool in production paths.
//
// Pools only grow. Exhaustion is never an error; it triggers hydration of a
// configurable batch of fresh records.
//
// Neither variant is safe for concurrent use.
package pool
