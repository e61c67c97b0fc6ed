package pricing

import (
	"math"
	"sort"
	"time"

	"vango/models"
)

// Billable is the rounded duration actually charged, distinct from the raw
// elapsed duration. Hours is always in [0,6).
type Billable struct {
	Days  int
	Hours int
}

// TotalHours returns the charged duration normalized to hours.
func (b Billable) TotalHours() int {
	return b.Days*24 + b.Hours
}

// ComputeDuration returns the rental duration in whole hours, rounding any
// started hour up. End must be strictly after start.
func ComputeDuration(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, &RangeError{Reason: "end must be after start"}
	}
	return int(math.Ceil(end.Sub(start).Hours())), nil
}

// SelectTier finds the tier covering totalHours. Both bounds are inclusive.
func SelectTier(totalHours int, tiers []models.PricingTier) (models.PricingTier, error) {
	for _, t := range tiers {
		if totalHours >= t.MinHours && totalHours <= t.MaxHours {
			return t, nil
		}
	}
	return models.PricingTier{}, &TierError{Hours: totalHours}
}

// ComputeBillable applies the day/hour rounding policy:
//   - anything under 24 hours is charged as one full day,
//   - a remainder of 6 hours or more past full days rounds up to another day,
//   - a remainder under 6 hours is charged as extra hours on top of the days.
func ComputeBillable(totalHours int) Billable {
	if totalHours < 24 {
		return Billable{Days: 1}
	}
	days := totalHours / 24
	remainder := totalHours % 24
	switch {
	case remainder >= 6:
		return Billable{Days: days + 1}
	case remainder > 0:
		return Billable{Days: days, Hours: remainder}
	default:
		return Billable{Days: days}
	}
}

// Quote computes the billable price for a rental window against a category's
// rate table. The tier is selected by the raw duration; day and hour
// components are both normalized to the tier's hourly rate so mixed charges
// never double-round.
func Quote(start, end time.Time, tiers []models.PricingTier) (Billable, float64, error) {
	hours, err := ComputeDuration(start, end)
	if err != nil {
		return Billable{}, 0, err
	}
	tier, err := SelectTier(hours, tiers)
	if err != nil {
		return Billable{}, 0, err
	}
	billable := ComputeBillable(hours)
	return billable, float64(billable.TotalHours()) * tier.PricePerHour, nil
}

// AddOnsTotal prices the requested add-on lines for a rental of rentalDays
// billable days. A line naming an add-on not in the catalog fails with an
// UnknownAddOnError, and a per-day add-on whose tier table has no entry for
// rentalDays is a rate-table gap and fails with a TierError; neither silently
// contributes zero.
func AddOnsTotal(addOns []models.AddOn, lines []models.AddOnLine, rentalDays int) (float64, []models.ReservationAddOn, error) {
	byID := make(map[string]models.AddOn, len(addOns))
	for _, a := range addOns {
		byID[a.ID] = a
	}

	var total float64
	priced := make([]models.ReservationAddOn, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		addOn, ok := byID[line.AddOnID]
		if !ok {
			return 0, nil, &UnknownAddOnError{AddOnID: line.AddOnID}
		}
		var unit float64
		switch addOn.PricingType {
		case models.AddOnPerDay:
			matched := false
			for _, t := range addOn.DayTiers {
				if rentalDays >= t.MinDays && rentalDays <= t.MaxDays {
					unit = t.Price
					matched = true
					break
				}
			}
			if !matched {
				return 0, nil, &TierError{Hours: rentalDays * 24}
			}
		default:
			unit = addOn.FlatPrice
		}
		lineTotal := unit * float64(line.Quantity)
		total += lineTotal
		priced = append(priced, models.ReservationAddOn{
			AddOnID:   addOn.ID,
			Name:      addOn.Name,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
	}
	return total, priced, nil
}

// ValidateTiers checks the rate-table invariant: ordered by MinHours, the
// tiers must start at hour 1, keep each bound ordered, and each tier must
// begin exactly one hour after the previous one ends. Storage order does not
// matter. Categories are rejected on write when this fails, so SelectTier can
// only miss on legacy data.
func ValidateTiers(tiers []models.PricingTier) error {
	if len(tiers) == 0 {
		return &TierError{Hours: 1}
	}
	sorted := make([]models.PricingTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinHours < sorted[j].MinHours })

	expectedMin := 1
	for _, t := range sorted {
		if t.MinHours != expectedMin {
			return &TierError{Hours: expectedMin}
		}
		if t.MaxHours < t.MinHours {
			return &RangeError{Reason: "tier max below min"}
		}
		if t.PricePerHour <= 0 {
			return &RangeError{Reason: "tier rate must be positive"}
		}
		expectedMin = t.MaxHours + 1
	}
	return nil
}
