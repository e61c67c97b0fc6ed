package agent

import (
	"testing"
	"time"

	"vango/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBookingPatchAdditive(t *testing.T) {
	existing := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	dst := models.BookingData{
		OfficeID:  strPtr("office-1"),
		StartDate: &existing,
	}

	changed, clarify := applyBookingPatch(&dst, models.BookingPatch{
		EndDate:   strPtr("2025-06-03T09:00:00Z"),
		DriverAge: intPtr(25),
	})
	require.Nil(t, clarify)
	assert.True(t, changed)

	// Untouched fields survive the patch.
	assert.Equal(t, "office-1", *dst.OfficeID)
	assert.True(t, dst.StartDate.Equal(existing))
	assert.True(t, dst.EndDate.Equal(existing.Add(48*time.Hour)))
	assert.Equal(t, 25, *dst.DriverAge)
}

func TestApplyBookingPatchEmptyChangesNothing(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	dst := models.BookingData{
		OfficeID:  strPtr("office-1"),
		StartDate: &start,
		DriverAge: intPtr(30),
	}
	before := dst

	changed, clarify := applyBookingPatch(&dst, models.BookingPatch{})
	require.Nil(t, clarify)
	assert.False(t, changed)
	assert.Equal(t, before, dst)
}

func TestApplyBookingPatchEndBeforeStart(t *testing.T) {
	dst := models.BookingData{}
	changed, clarify := applyBookingPatch(&dst, models.BookingPatch{
		StartDate: strPtr("2025-06-03T09:00:00Z"),
		EndDate:   strPtr("2025-06-01T09:00:00Z"),
	})
	require.NotNil(t, clarify)
	assert.Contains(t, clarify.prompt, "after the pickup")
	assert.True(t, changed)

	// The bad return date is discarded, the pickup date is kept.
	assert.Nil(t, dst.EndDate)
	require.NotNil(t, dst.StartDate)
}

func TestApplyBookingPatchUnderageDriver(t *testing.T) {
	dst := models.BookingData{}
	_, clarify := applyBookingPatch(&dst, models.BookingPatch{DriverAge: intPtr(16)})
	require.NotNil(t, clarify)
	assert.Nil(t, dst.DriverAge)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+31612345678", normalizePhone("+31 6 12 34 56 78"))
	assert.Equal(t, "0612345678", normalizePhone("06-12 34 56 78"))
	assert.Empty(t, normalizePhone("12345"), "too short to dial")
	assert.Empty(t, normalizePhone("call me maybe"))
}

func TestRecommendCategorySmallestFit(t *testing.T) {
	categories := []models.Category{
		{ID: "s", Name: "Compact", CargoVolumeM3: 3, PayloadKg: 600, Seats: 2},
		{ID: "m", Name: "Panel Van", CargoVolumeM3: 8, PayloadKg: 1000, Seats: 3},
		{ID: "l", Name: "Luton", CargoVolumeM3: 18, PayloadKg: 1200, Seats: 3},
	}

	rec := recommendCategory(models.CustomerNeeds{CargoVolumeM3: floatPtr(5)}, categories)
	require.NotNil(t, rec)
	assert.Equal(t, "m", rec.ID)

	// Nothing is big enough: offer the largest instead of nothing.
	rec = recommendCategory(models.CustomerNeeds{CargoVolumeM3: floatPtr(40)}, categories)
	require.NotNil(t, rec)
	assert.Equal(t, "l", rec.ID)

	// Passenger count filters on seats.
	rec = recommendCategory(models.CustomerNeeds{Passengers: intPtr(3)}, categories)
	require.NotNil(t, rec)
	assert.Equal(t, "m", rec.ID)

	assert.Nil(t, recommendCategory(models.CustomerNeeds{}, nil))
}
