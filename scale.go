package games

import "math"

// ComputeScale returns the uniform upscale factor that fits a reqW x reqH
// canvas in availW x availH: min(availW/reqW, availH/reqH, maxScale).
// maxScale <= 0 means uncapped.
func ComputeScale(reqW, reqH, availW, availH, maxScale float64) float64 {
	if reqW <= 0 || reqH <= 0 {
		return 1
	}
	s := math.Min(availW/reqW, availH/reqH)
	if maxScale > 0 {
		s = math.Min(s, maxScale)
	}
	return s
}

// Scaler maps host (displayed) coordinates to canvas (native) coordinates.
// A zero displayed size maps one to one.
type Scaler struct {
	NativeW, NativeH   float64
	DisplayW, DisplayH float64
}

// NewScaler returns a scaler for a native canvas displayed at scale.
func NewScaler(nativeW, nativeH, scale float64) Scaler {
	return Scaler{
		NativeW:  nativeW,
		NativeH:  nativeH,
		DisplayW: nativeW * scale,
		DisplayH: nativeH * scale,
	}
}

func (s Scaler) ratio() (float64, float64) {
	if s.DisplayW <= 0 || s.DisplayH <= 0 || s.NativeW <= 0 || s.NativeH <= 0 {
		return 1, 1
	}
	return s.NativeW / s.DisplayW, s.NativeH / s.DisplayH
}

// ToCanvas maps a host position to the canvas.
func (s Scaler) ToCanvas(x, y float64) (float64, float64) {
	rx, ry := s.ratio()
	return x * rx, y * ry
}

// ToHost maps a canvas position to the host.
func (s Scaler) ToHost(x, y float64) (float64, float64) {
	rx, ry := s.ratio()
	return x / rx, y / ry
}
