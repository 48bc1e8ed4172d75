package layout

import "math"

// ObstacleCount returns how many obstacles level levelID gets, capped at capacity.
//
// The curve grows logarithmically for the first levels and linearly after,
// with a gentler slope in the middle band. Level ids below 1 count as 1.
func ObstacleCount(levelID, capacity int) int {
	if levelID < 1 {
		levelID = 1
	}
	id := float64(levelID)

	var n int
	switch {
	case levelID < 16:
		n = int(math.Floor(2*math.Log(id) + 3))
	case levelID < 40:
		n = int(math.Floor(0.24*id + 5))
	case levelID < 100:
		n = int(math.Floor(0.1*id + 10))
	case levelID < 350:
		n = int(math.Floor(0.12*id + 8))
	default:
		n = capacity
	}
	return min(n, capacity)
}
