package gamemath

// ScoreTracker counts altitude watermarks. y grows downward, so a new
// watermark is a strictly smaller y.
type ScoreTracker struct {
	Score    int
	HighestY float64
}

// NewScoreTracker starts at zero with the watermark at startY.
func NewScoreTracker(startY float64) ScoreTracker {
	return ScoreTracker{HighestY: startY}
}

// Observe records one frame of player state and reports whether the score
// went up. Airborne frames never score.
func (s *ScoreTracker) Observe(y float64, grounded bool) bool {
	if !grounded || y >= s.HighestY {
		return false
	}
	s.HighestY = y
	s.Score++
	return true
}
