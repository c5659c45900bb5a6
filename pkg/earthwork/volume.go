package earthwork

// CubicFeetPerCubicYard converts cubic feet to cubic yards.
const CubicFeetPerCubicYard = 27.0

// AverageEndAreaVolume returns the volume in cubic yards of the prism
// between two cross-sectional end areas (square feet) spaced distance
// feet apart: the mean of the two areas times the distance, converted
// from cubic feet. Both CutVolumeTo and FillVolumeTo delegate here.
func AverageEndAreaVolume(distance, area1, area2 float64) float64 {
	return distance * (area1 + area2) / (2 * CubicFeetPerCubicYard)
}
