package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name                      string
		reqW, reqH, availW, availH float64
		maxScale                  float64
		want                      float64
	}{
		{"fits width", 320, 180, 1280, 1000, 0, 4},
		{"fits height", 320, 180, 2000, 360, 0, 2},
		{"fractional", 320, 180, 800, 600, 0, 2.5},
		{"capped", 320, 180, 1920, 1080, 3, 3},
		{"cap above fit", 320, 180, 640, 360, 5, 2},
		{"shrinks", 320, 180, 160, 90, 0, 0.5},
		{"bad request", 0, 180, 640, 360, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScale(tt.reqW, tt.reqH, tt.availW, tt.availH, tt.maxScale)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScalerRoundTrip(t *testing.T) {
	s := NewScaler(320, 180, 2.5)
	assert.Equal(t, 800.0, s.DisplayW)
	assert.Equal(t, 450.0, s.DisplayH)

	x, y := s.ToCanvas(400, 225)
	assert.InDelta(t, 160, x, 1e-9)
	assert.InDelta(t, 90, y, 1e-9)

	hx, hy := s.ToHost(x, y)
	assert.InDelta(t, 400, hx, 1e-9)
	assert.InDelta(t, 225, hy, 1e-9)
}

func TestScalerIdentity(t *testing.T) {
	var s Scaler
	x, y := s.ToCanvas(7, 9)
	assert.Equal(t, 7.0, x)
	assert.Equal(t, 9.0, y)
}
