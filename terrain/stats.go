package terrain

import "github.com/chewxy/math32"

// Stats capture the extent and mean of vertex heights.
type Stats struct {
	Min   float32
	Max   float32
	Num   int
	Total float64
}

// Reset spreads Min and Max to the farthest possible boundary values.
func (stats *Stats) Reset() {
	stats.Min = math32.MaxFloat32
	stats.Max = -math32.MaxFloat32
	stats.Num = 0
	stats.Total = 0
}

// Add accounts for a height, raising the max or lowering the min.
func (stats *Stats) Add(h float32) {
	if h > stats.Max {
		stats.Max = h
	}
	if h < stats.Min {
		stats.Min = h
	}
	stats.Num++
	stats.Total += float64(h)
}

// Spread returns the gap between the highest and lowest height.
func (stats Stats) Spread() float32 {
	if stats.Num == 0 {
		return 0
	}
	return stats.Max - stats.Min
}

// Mean returns the average height, zero when empty.
func (stats Stats) Mean() float64 {
	if stats.Num == 0 {
		return 0
	}
	return stats.Total / float64(stats.Num)
}

// HeightStats measures the local heights of every vertex in a store.
func HeightStats(s Store) Stats {
	var stats Stats
	stats.Reset()
	s.Each(func(v Vertex) {
		stats.Add(v.Local.Y)
	})
	return stats
}
