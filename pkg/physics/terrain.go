package physics

import "math"

// Terrain returns the ground height at a distance down the course.
type Terrain func(courseZ float64) float64

// Hill shape of the stock course.
const (
	HillWavelength = 1000.0
	HillAmplitude  = 5.0
)

// SineHills is the stock rolling course. It is flat before the start line.
func SineHills(courseZ float64) float64 {
	if courseZ < 0 {
		return 0
	}
	return math.Sin(courseZ/HillWavelength) * HillAmplitude
}

// Flat is a course with no elevation.
func Flat(float64) float64 {
	return 0
}
