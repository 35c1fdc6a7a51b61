package model

import "math"

// Dimensions are in centimetres and grams.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
	Weight float64
}

// Valid reports whether all three sides are positive and finite.
func (d Dimensions) Valid() bool {
	return positive(d.Length) && positive(d.Width) && positive(d.Height)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// UnitsVolume is the volume of qty units, capped at math.MaxFloat64.
func (d Dimensions) UnitsVolume(qty int) float64 {
	v := d.Volume() * float64(qty)
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

// ValidPtr reports whether d is set and has three positive sides.
func ValidPtr(d *Dimensions) bool {
	return d != nil && d.Valid()
}

// Fitter answers whether a box of the given size can still be put somewhere.
type Fitter interface {
	Fits(d Dimensions) bool
}
