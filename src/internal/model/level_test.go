package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_MidBand(t *testing.T) {
	band, ok := BandFor(LevelSilver)
	assert.True(t, ok)
	assert.InDelta(t, 75.0, band.Progress(250), 0.001)
}

func TestProgress_Clamped(t *testing.T) {
	band, _ := BandFor(LevelSilver)
	assert.Equal(t, 0.0, band.Progress(50))
	assert.Equal(t, 100.0, band.Progress(900))
}

func TestProgress_MasterIsFull(t *testing.T) {
	band, _ := BandFor(LevelMaster)
	assert.Equal(t, 100.0, band.Progress(1501))
}

func TestBandForScore(t *testing.T) {
	assert.Equal(t, LevelBronze, BandForScore(0).Level)
	assert.Equal(t, LevelSilver, BandForScore(100).Level)
	assert.Equal(t, LevelGold, BandForScore(599).Level)
	assert.Equal(t, LevelMaster, BandForScore(20000).Level)
}

func TestProfileBand_FallsBackToScore(t *testing.T) {
	p := Profile{Score: 650}
	assert.Equal(t, LevelPlatinum, p.Band().Level)

	p.Level = LevelGold
	assert.Equal(t, LevelGold, p.Band().Level)
}
