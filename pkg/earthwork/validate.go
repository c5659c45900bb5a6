package earthwork

import (
	"errors"
	"fmt"
	"math"
)

// Validation sentinels. Construction never validates; call Validate to
// check a section before trusting computed volumes.
var (
	// ErrNegativeArea reports a cut or fill area below zero.
	ErrNegativeArea = errors.New("negative cross-sectional area")
	// ErrNotFinite reports a NaN or infinite field.
	ErrNotFinite = errors.New("non-finite value")
)

// Validate reports whether the section's fields make physical sense:
// finite position and areas, and non-negative cut and fill. A station
// label that disagrees with the position is not an error; explicit
// labels are kept verbatim.
func (cs CrossSection) Validate() error {
	if !isFinite(cs.position) {
		return fmt.Errorf("position %v: %w", cs.position, ErrNotFinite)
	}
	if !isFinite(cs.cut) {
		return fmt.Errorf("cut area %v: %w", cs.cut, ErrNotFinite)
	}
	if !isFinite(cs.fill) {
		return fmt.Errorf("fill area %v: %w", cs.fill, ErrNotFinite)
	}
	if cs.cut < 0 {
		return fmt.Errorf("cut area %.2f sq ft: %w", cs.cut, ErrNegativeArea)
	}
	if cs.fill < 0 {
		return fmt.Errorf("fill area %.2f sq ft: %w", cs.fill, ErrNegativeArea)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
