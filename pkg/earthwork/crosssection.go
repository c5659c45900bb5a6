// Package earthwork computes cut and fill volumes between surveyed
// cross-sections along a linear alignment using the average-end-area
// method. A caller builds one CrossSection per station, walks adjacent
// pairs in station order, and sums the pairwise volumes. Units are
// fixed: positions and offsets in feet, areas in square feet, with
// volumes reported in cubic yards.
package earthwork

import (
	"fmt"
	"math"
)

// CrossSection is one station's earthwork survey data: the areas of
// material to be excavated (cut) and placed (fill) at a position along
// the alignment.
//
// CrossSection is an immutable value object. The station label is fixed
// at construction and no method mutates the receiver. Construct values
// with NewCrossSection or NewCrossSectionWithStation; the zero value is
// usable but carries an empty station label.
type CrossSection struct {
	position float64 // feet from the alignment origin
	cut      float64 // square feet of material to remove
	fill     float64 // square feet of material to place
	station  string  // display label, fixed at construction
}

// NewCrossSection creates a cross-section at position (feet) with the
// given cut and fill areas (square feet). The station label is derived
// from position; see FormatStation. Inputs are not validated: negative
// or nonsensical values are stored as given, and Validate reports them
// on request.
func NewCrossSection(position, cut, fill float64) CrossSection {
	return CrossSection{
		position: position,
		cut:      cut,
		fill:     fill,
		station:  FormatStation(position),
	}
}

// NewCrossSectionWithStation is NewCrossSection with an explicit station
// label. The label is kept verbatim and never recomputed, even when it
// disagrees with position.
func NewCrossSectionWithStation(position, cut, fill float64, station string) CrossSection {
	return CrossSection{
		position: position,
		cut:      cut,
		fill:     fill,
		station:  station,
	}
}

// Position returns the distance in feet from the alignment origin.
func (cs CrossSection) Position() float64 { return cs.position }

// Cut returns the cut cross-sectional area in square feet.
func (cs CrossSection) Cut() float64 { return cs.cut }

// Fill returns the fill cross-sectional area in square feet.
func (cs CrossSection) Fill() float64 { return cs.fill }

// Station returns the station label, e.g. "11+00".
func (cs CrossSection) Station() string { return cs.station }

// String renders the section for survey listings, with cut and fill
// rounded to whole square feet for display only:
//
//	STA 11+00 cut: 350 sq ft & fill 000 sq ft
func (cs CrossSection) String() string {
	return fmt.Sprintf("STA %s cut: %03.0f sq ft & fill %03.0f sq ft", cs.station, cs.cut, cs.fill)
}

// DistanceTo returns the distance in feet between this cross-section
// and another. Always non-negative and symmetric.
func (cs CrossSection) DistanceTo(other CrossSection) float64 {
	return math.Abs(other.position - cs.position)
}

// CutVolumeTo returns the cut volume in cubic yards between this
// cross-section and another by the average-end-area method. swell is a
// decimal bulking fraction applied to the excavated volume (0.10 = 10%);
// pass 0 for bank volume.
func (cs CrossSection) CutVolumeTo(other CrossSection, swell float64) float64 {
	return AverageEndAreaVolume(cs.DistanceTo(other), cs.cut, other.cut) * (1 + swell)
}

// FillVolumeTo returns the fill volume in cubic yards between this
// cross-section and another. shrink is a decimal compaction fraction
// applied to the placed volume (0.10 = 10%); pass 0 for no adjustment.
func (cs CrossSection) FillVolumeTo(other CrossSection, shrink float64) float64 {
	return AverageEndAreaVolume(cs.DistanceTo(other), cs.fill, other.fill) * (1 + shrink)
}

// NetEarthworkTo returns cut volume minus fill volume in cubic yards
// between this cross-section and another. Positive means surplus
// material must be hauled off; negative means material must be
// imported.
func (cs CrossSection) NetEarthworkTo(other CrossSection, shrink, swell float64) float64 {
	return cs.CutVolumeTo(other, swell) - cs.FillVolumeTo(other, shrink)
}
