package earthwork

import "math"

// SectionPoint is one vertex of a cross-section region boundary: the
// offset from the alignment centerline and the elevation, both in feet.
// Negative offsets are left of centerline.
type SectionPoint struct {
	Offset    float64
	Elevation float64
}

// EndArea returns the area in square feet enclosed by a closed traverse
// through the given vertices, by the coordinate (shoelace) method. The
// traverse closes itself from the last vertex back to the first, and
// winding direction does not matter. Fewer than three vertices enclose
// nothing and return 0.
//
// The result is the usual source of the cut and fill areas passed to
// NewCrossSection: trace the boundary of the cut region between ground
// line and design grade, then the fill region, and take an EndArea of
// each.
func EndArea(vertices []SectionPoint) float64 {
	return math.Abs(signedEndArea(vertices))
}

func signedEndArea(vertices []SectionPoint) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += vertices[i].Offset * vertices[j].Elevation
		area -= vertices[j].Offset * vertices[i].Elevation
	}
	return area / 2
}
