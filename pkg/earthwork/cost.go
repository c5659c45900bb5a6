package earthwork

// Baseline unit costs for preliminary estimates. Projects with bid
// pricing should carry their own UnitCosts instead.
const (
	ExcavationCostPerCY = 12.0 // $/yd³ cut, loose measure
	PlacementCostPerCY  = 8.0  // $/yd³ fill, compacted measure
	HaulCostPerCY       = 6.0  // $/yd³ surplus hauled off site
	ImportCostPerCY     = 15.0 // $/yd³ borrow delivered to site
)

// UnitCosts carries the $/yd³ rates applied to each earthwork quantity.
type UnitCosts struct {
	ExcavationPerCY float64 `json:"excavation_per_cy"`
	PlacementPerCY  float64 `json:"placement_per_cy"`
	HaulPerCY       float64 `json:"haul_per_cy"`
	ImportPerCY     float64 `json:"import_per_cy"`
}

// DefaultUnitCosts returns the baseline rates.
func DefaultUnitCosts() UnitCosts {
	return UnitCosts{
		ExcavationPerCY: ExcavationCostPerCY,
		PlacementPerCY:  PlacementCostPerCY,
		HaulPerCY:       HaulCostPerCY,
		ImportPerCY:     ImportCostPerCY,
	}
}

// CostBreakdown itemizes the estimate for one span, in dollars.
type CostBreakdown struct {
	Excavation float64 `json:"excavation"`
	Placement  float64 `json:"placement"`
	Balance    float64 `json:"balance"`
	Total      float64 `json:"total"`
}

// EstimateCost prices the earthwork of the span between two
// cross-sections. Excavation is priced on the swelled cut volume,
// placement on the shrunk fill volume, and the net imbalance on the
// haul rate when material leaves the site or the import rate when
// borrow must be brought in. shrink and swell are the decimal
// fractions passed through to FillVolumeTo and CutVolumeTo.
func EstimateCost(from, to CrossSection, shrink, swell float64, rates UnitCosts) CostBreakdown {
	cut := from.CutVolumeTo(to, swell)
	fill := from.FillVolumeTo(to, shrink)
	net := cut - fill

	b := CostBreakdown{
		Excavation: cut * rates.ExcavationPerCY,
		Placement:  fill * rates.PlacementPerCY,
	}
	if net >= 0 {
		b.Balance = net * rates.HaulPerCY
	} else {
		b.Balance = -net * rates.ImportPerCY
	}
	b.Total = b.Excavation + b.Placement + b.Balance
	return b
}
