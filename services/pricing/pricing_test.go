package pricing

import (
	"testing"
	"time"

	"vango/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTiers = []models.PricingTier{
	{MinHours: 1, MaxHours: 23, PricePerHour: 10},
	{MinHours: 24, MaxHours: 167, PricePerHour: 8},
}

func TestComputeDuration(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	hours, err := ComputeDuration(start, start.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, hours, "started hours round up")

	hours, err = ComputeDuration(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 24, hours)

	// Pure function: same inputs, same result.
	again, err := ComputeDuration(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, hours, again)
}

func TestComputeDurationInvalidRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	_, err := ComputeDuration(start, start)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)

	_, err = ComputeDuration(start, start.Add(-time.Hour))
	require.ErrorAs(t, err, &rangeErr)
}

func TestComputeBillableUnderOneDay(t *testing.T) {
	for hours := 1; hours <= 23; hours++ {
		b := ComputeBillable(hours)
		assert.Equal(t, Billable{Days: 1}, b, "hours=%d", hours)
	}
}

func TestComputeBillableBoundaries(t *testing.T) {
	cases := []struct {
		hours int
		want  Billable
	}{
		{24, Billable{Days: 1}},
		{25, Billable{Days: 1, Hours: 1}},
		{29, Billable{Days: 1, Hours: 5}},
		{30, Billable{Days: 2}}, // remainder of 6 rounds up
		{48, Billable{Days: 2}},
		{53, Billable{Days: 2, Hours: 5}},
		{54, Billable{Days: 3}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ComputeBillable(tc.hours), "hours=%d", tc.hours)
	}
}

func TestSelectTier(t *testing.T) {
	tier, err := SelectTier(12, testTiers)
	require.NoError(t, err)
	assert.Equal(t, 10.0, tier.PricePerHour)

	tier, err = SelectTier(24, testTiers)
	require.NoError(t, err)
	assert.Equal(t, 8.0, tier.PricePerHour)

	_, err = SelectTier(200, testTiers)
	var tierErr *TierError
	require.ErrorAs(t, err, &tierErr)
	assert.Equal(t, 200, tierErr.Hours)
}

func TestSelectTierTotality(t *testing.T) {
	require.NoError(t, ValidateTiers(testTiers))
	maxHours := testTiers[len(testTiers)-1].MaxHours
	for h := 1; h <= maxHours; h++ {
		matches := 0
		for _, tier := range testTiers {
			if h >= tier.MinHours && h <= tier.MaxHours {
				matches++
			}
		}
		require.Equal(t, 1, matches, "hour %d must match exactly one tier", h)
	}
}

func TestValidateTiersRejectsGaps(t *testing.T) {
	gapped := []models.PricingTier{
		{MinHours: 1, MaxHours: 23, PricePerHour: 10},
		{MinHours: 25, MaxHours: 167, PricePerHour: 8},
	}
	assert.Error(t, ValidateTiers(gapped))

	overlapping := []models.PricingTier{
		{MinHours: 1, MaxHours: 24, PricePerHour: 10},
		{MinHours: 24, MaxHours: 167, PricePerHour: 8},
	}
	assert.Error(t, ValidateTiers(overlapping))

	assert.Error(t, ValidateTiers(nil))
}

func TestValidateTiersIgnoresStorageOrder(t *testing.T) {
	unsorted := []models.PricingTier{
		{MinHours: 24, MaxHours: 167, PricePerHour: 8},
		{MinHours: 1, MaxHours: 23, PricePerHour: 10},
	}
	assert.NoError(t, ValidateTiers(unsorted))

	// The input slice itself is left alone.
	assert.Equal(t, 24, unsorted[0].MinHours)

	unsortedGapped := []models.PricingTier{
		{MinHours: 25, MaxHours: 167, PricePerHour: 8},
		{MinHours: 1, MaxHours: 23, PricePerHour: 10},
	}
	assert.Error(t, ValidateTiers(unsortedGapped))
}

func TestQuoteEndToEnd(t *testing.T) {
	// 2025-01-01T10:00 to 2025-01-02T16:00 is 30 hours: one full day plus a
	// 6-hour remainder, which rounds up to 2 billable days at the 8/h tier.
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 2, 16, 0, 0, 0, time.UTC)

	billable, price, err := Quote(start, end, testTiers)
	require.NoError(t, err)
	assert.Equal(t, Billable{Days: 2}, billable)
	assert.Equal(t, 384.0, price)
}

func TestQuoteShortRental(t *testing.T) {
	// 3 raw hours bill as one full day at the short-rental tier.
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	billable, price, err := Quote(start, start.Add(3*time.Hour), testTiers)
	require.NoError(t, err)
	assert.Equal(t, Billable{Days: 1}, billable)
	assert.Equal(t, 240.0, price)
}

func TestAddOnsTotal(t *testing.T) {
	addOns := []models.AddOn{
		{ID: "trolley", Name: "Trolley", PricingType: models.AddOnFlat, FlatPrice: 5},
		{ID: "gps", Name: "GPS", PricingType: models.AddOnPerDay, DayTiers: []models.AddOnTier{
			{MinDays: 1, MaxDays: 3, Price: 4},
			{MinDays: 4, MaxDays: 30, Price: 3},
		}},
	}
	lines := []models.AddOnLine{
		{AddOnID: "trolley", Quantity: 2},
		{AddOnID: "gps", Quantity: 1},
	}

	total, priced, err := AddOnsTotal(addOns, lines, 2)
	require.NoError(t, err)
	assert.Equal(t, 14.0, total)
	require.Len(t, priced, 2)
	assert.Equal(t, 10.0, priced[0].LineTotal)
	assert.Equal(t, 4.0, priced[1].LineTotal)
}

func TestAddOnsTotalMissingTierFailsLoudly(t *testing.T) {
	addOns := []models.AddOn{
		{ID: "gps", Name: "GPS", PricingType: models.AddOnPerDay, DayTiers: []models.AddOnTier{
			{MinDays: 1, MaxDays: 3, Price: 4},
		}},
	}
	lines := []models.AddOnLine{{AddOnID: "gps", Quantity: 1}}

	_, _, err := AddOnsTotal(addOns, lines, 10)
	var tierErr *TierError
	require.ErrorAs(t, err, &tierErr)
}

func TestAddOnsTotalUnknownAddOnFailsLoudly(t *testing.T) {
	addOns := []models.AddOn{
		{ID: "trolley", Name: "Trolley", PricingType: models.AddOnFlat, FlatPrice: 5},
	}
	lines := []models.AddOnLine{
		{AddOnID: "trolley", Quantity: 1},
		{AddOnID: "jetpack", Quantity: 1},
	}

	_, _, err := AddOnsTotal(addOns, lines, 2)
	var unknown *UnknownAddOnError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "jetpack", unknown.AddOnID)
}
