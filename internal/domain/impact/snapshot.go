package impact

// GramsToLbs converts metric catalog weights to the pounds the dashboard
// reports.
const GramsToLbs = 0.00220462

// Snapshot is the cumulative impact of all picked-up reservations. It is a
// materialized view over the reservation log, never an independent source
// of truth: Add-ing the Delta of every picked_up reservation must reproduce
// it exactly.
type Snapshot struct {
	TotalLbsSaved         float64 `json:"total_lbs_saved"`
	TotalCO2eAvoided      float64 `json:"total_co2e_avoided"`
	TotalRevenueRecovered float64 `json:"total_revenue_recovered"`
	TotalItemsRescued     int64   `json:"total_items_rescued"`
}

// Delta is the contribution of a single confirmed pickup.
type Delta struct {
	LbsSaved         float64
	CO2eAvoided      float64
	RevenueRecovered float64
	ItemsRescued     int64
}

// ForPickup derives the impact of picking up qty units of a product sold at
// unitPriceCents (the offer's discounted price).
func ForPickup(qty int, weightGrams, co2ePerKg float64, unitPriceCents int64) Delta {
	weightKg := weightGrams * float64(qty) / 1000.0
	return Delta{
		LbsSaved:         weightGrams * float64(qty) * GramsToLbs,
		CO2eAvoided:      weightKg * co2ePerKg,
		RevenueRecovered: float64(unitPriceCents*int64(qty)) / 100.0,
		ItemsRescued:     int64(qty),
	}
}

func (s Snapshot) Add(d Delta) Snapshot {
	return Snapshot{
		TotalLbsSaved:         s.TotalLbsSaved + d.LbsSaved,
		TotalCO2eAvoided:      s.TotalCO2eAvoided + d.CO2eAvoided,
		TotalRevenueRecovered: s.TotalRevenueRecovered + d.RevenueRecovered,
		TotalItemsRescued:     s.TotalItemsRescued + d.ItemsRescued,
	}
}
