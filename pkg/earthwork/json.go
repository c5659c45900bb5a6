package earthwork

import (
	"encoding/json"
	"fmt"
)

// crossSectionJSON is the wire shape of a CrossSection.
type crossSectionJSON struct {
	Position float64 `json:"position"`
	Cut      float64 `json:"cut"`
	Fill     float64 `json:"fill"`
	Station  string  `json:"station,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (cs CrossSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(crossSectionJSON{
		Position: cs.position,
		Cut:      cs.cut,
		Fill:     cs.fill,
		Station:  cs.station,
	})
}

// UnmarshalJSON implements json.Unmarshaler. A document without a
// station field gets a label derived from its position; a document with
// one keeps it verbatim, matching the two constructors.
func (cs *CrossSection) UnmarshalJSON(data []byte) error {
	var doc crossSectionJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding cross-section: %w", err)
	}
	if doc.Station == "" {
		*cs = NewCrossSection(doc.Position, doc.Cut, doc.Fill)
	} else {
		*cs = NewCrossSectionWithStation(doc.Position, doc.Cut, doc.Fill, doc.Station)
	}
	return nil
}
