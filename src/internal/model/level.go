package model

import "math"

// LevelBand is the score range of a contribution tier. NextMin is
// math.MaxInt for the top tier.
type LevelBand struct {
	Level   Level
	Min     int
	NextMin int
	Icon    string
	Color   string
}

var LevelBands = []LevelBand{
	{Level: LevelBronze, Min: 0, NextMin: 100, Icon: "🥉", Color: "#CD7F32"},
	{Level: LevelSilver, Min: 100, NextMin: 300, Icon: "🥈", Color: "#C0C0C0"},
	{Level: LevelGold, Min: 300, NextMin: 600, Icon: "🥇", Color: "#FFD700"},
	{Level: LevelPlatinum, Min: 600, NextMin: 1000, Icon: "✨", Color: "#E5E4E2"},
	{Level: LevelDiamond, Min: 1000, NextMin: 1500, Icon: "💎", Color: "#B9F2FF"},
	{Level: LevelMaster, Min: 1500, NextMin: math.MaxInt, Icon: "👑", Color: "#FF4500"},
}

func BandFor(level Level) (LevelBand, bool) {
	for _, b := range LevelBands {
		if b.Level == level {
			return b, true
		}
	}
	return LevelBand{}, false
}

// BandForScore is used when the backend omits the level.
func BandForScore(score int) LevelBand {
	band := LevelBands[0]
	for _, b := range LevelBands {
		if score >= b.Min {
			band = b
		}
	}
	return band
}

// Progress returns the percentage towards the next tier, clamped to [0,100].
func (b LevelBand) Progress(score int) float64 {
	if b.Level == LevelMaster {
		return 100
	}
	span := b.NextMin - b.Min
	if span <= 0 {
		return 0
	}
	p := float64(score-b.Min) / float64(span) * 100
	return math.Max(0, math.Min(100, p))
}

// Band resolves the profile's tier, preferring the backend-reported level.
func (p Profile) Band() LevelBand {
	if b, ok := BandFor(p.Level); ok {
		return b
	}
	return BandForScore(p.Score)
}
