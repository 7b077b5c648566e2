package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampToward(t *testing.T) {
	tests := []struct {
		name                   string
		v, accel, target, want float64
	}{
		{"accelerate right", 0, 0.5, 2, 0.5},
		{"cap at right target", 1.8, 0.5, 2, 2},
		{"accelerate left", 0, -0.5, -2, -0.5},
		{"cap at left target", -1.8, -0.5, -2, -2},
		{"faster than target snaps down", 8, 0.5, 2, 2},
		{"decelerate from right", 1, -0.5, 0, 0.5},
		{"decelerate from right stops at zero", 0.3, -0.5, 0, 0},
		{"decelerate from left", -1, 0.5, 0, -0.5},
		{"decelerate from left stops at zero", -0.3, 0.5, 0, 0},
		{"no accel no target zeroes", 1.7, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ClampToward(tt.v, tt.accel, tt.target), 1e-9)
		})
	}
}

func TestClampTowardNeverOvershoots(t *testing.T) {
	for _, target := range []float64{-8, -2.5, -0.8, 0.8, 2, 8} {
		accel := 0.6 * float64(Sign(target))
		v := 0.0
		for range 50 {
			v = ClampToward(v, accel, target)
			if target > 0 {
				assert.LessOrEqual(t, v, target)
			} else {
				assert.GreaterOrEqual(t, v, target)
			}
		}
		assert.InDelta(t, target, v, 1e-9)
	}
}

func TestClampTowardZeroKeepsSign(t *testing.T) {
	v := 2.3
	for range 20 {
		v = ClampToward(v, -0.5, 0)
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.Zero(t, v)

	v = -2.3
	for range 20 {
		v = ClampToward(v, 0.5, 0)
		assert.LessOrEqual(t, v, 0.0)
	}
	assert.Zero(t, v)
}
