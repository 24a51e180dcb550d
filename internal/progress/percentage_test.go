package progress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage_Examples(t *testing.T) {
	tests := []struct {
		name         string
		raised, goal float64
		want         int
	}{
		{"quarter", 50, 200, 25},
		{"nothing raised", 0, 100, 0},
		{"over goal clamps", 150, 100, 100},
		{"exactly goal", 100, 100, 100},
		{"rounds half up", 12.5, 100, 13},
		{"rounds down", 12.4, 100, 12},
		{"zero goal", 50, 0, 0},
		{"negative goal", 50, -10, 0},
		{"negative raised", -5, 100, 0},
		{"nan goal", 10, math.NaN(), 0},
		{"nan raised", math.NaN(), 10, 0},
		{"infinite goal", 10, math.Inf(1), 0},
		{"infinite raised", math.Inf(1), 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.raised, tt.goal))
		})
	}
}

func TestPercentage_BoundsHoldForNonNegativeInput(t *testing.T) {
	goals := []float64{0.01, 1, 3, 7, 100, 1e6}
	for _, goal := range goals {
		assert.Equal(t, 100, Percentage(goal, goal), "goal %v", goal)
		for raised := 0.0; raised <= goal*3; raised += goal / 7 {
			p := Percentage(raised, goal)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	}
}

func TestPercentage_NonPositiveGoalIsAlwaysZero(t *testing.T) {
	for _, goal := range []float64{0, -1, -1e9, math.Inf(-1)} {
		for _, raised := range []float64{0, 1, 1e9} {
			assert.Equal(t, 0, Percentage(raised, goal))
		}
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[##........]", Bar(25, 10))
	assert.Equal(t, "[..........]", Bar(-5, 10))
	assert.Equal(t, "[##########]", Bar(250, 10))
	assert.Equal(t, "", Bar(50, 0))
}
