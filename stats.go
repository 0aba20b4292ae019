package cellgrid

// GridStats contains bucket occupancy statistics for debugging/profiling.
type GridStats struct {
	TotalBuckets    int
	NonEmptyBuckets int
	Records         int
	MaxPerBucket    int
	AvgPerNonEmpty  float64
}

// Stats returns occupancy statistics. Cost is O(number of buckets).
func (g *SpatialGrid2D[T]) Stats() GridStats {
	var maxPerBucket, nonEmpty int
	for _, bucket := range g.buckets {
		if len(bucket) == 0 {
			continue
		}
		nonEmpty++
		if len(bucket) > maxPerBucket {
			maxPerBucket = len(bucket)
		}
	}

	avg := 0.0
	if nonEmpty > 0 {
		avg = float64(g.size) / float64(nonEmpty)
	}

	return GridStats{
		TotalBuckets:    len(g.buckets),
		NonEmptyBuckets: nonEmpty,
		Records:         g.size,
		MaxPerBucket:    maxPerBucket,
		AvgPerNonEmpty:  avg,
	}
}
