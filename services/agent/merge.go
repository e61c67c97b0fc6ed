package agent

import (
	"strings"
	"time"

	"vango/models"
)

// Driver age policy bounds.
const (
	minDriverAge = 18
	maxDriverAge = 99
)

// acceptedDateLayouts are tried in order when parsing extracted dates.
var acceptedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// clarification is a recoverable extraction problem: the turn answers with a
// follow-up question instead of changing any state.
type clarification struct {
	prompt string
}

// mergeNeeds copies the fields the model extracted this turn onto the known
// needs. Additive: fields not mentioned again are preserved.
func mergeNeeds(dst *models.CustomerNeeds, patch models.CustomerNeeds) bool {
	changed := false
	if patch.CargoDescription != "" && patch.CargoDescription != dst.CargoDescription {
		dst.CargoDescription = patch.CargoDescription
		changed = true
	}
	if patch.CargoVolumeM3 != nil {
		dst.CargoVolumeM3 = patch.CargoVolumeM3
		changed = true
	}
	if patch.WeightKg != nil {
		dst.WeightKg = patch.WeightKg
		changed = true
	}
	if patch.Passengers != nil {
		dst.Passengers = patch.Passengers
		changed = true
	}
	if patch.DistanceKm != nil {
		dst.DistanceKm = patch.DistanceKm
		changed = true
	}
	return changed
}

// applyBookingPatch merges the turn's extracted booking fields. Only fields
// present in the patch overwrite; an empty patch wipes nothing. Malformed
// values return a clarification rather than an error so the dialogue can
// re-ask without losing state.
func applyBookingPatch(dst *models.BookingData, patch models.BookingPatch) (bool, *clarification) {
	changed := false

	if patch.OfficeID != nil && *patch.OfficeID != "" {
		dst.OfficeID = patch.OfficeID
		changed = true
	}
	if patch.StartDate != nil {
		t, ok := parseDate(*patch.StartDate)
		if !ok {
			return changed, &clarification{prompt: "I didn't catch the pickup date. Could you give it once more, with the day and the time?"}
		}
		dst.StartDate = &t
		changed = true
	}
	if patch.EndDate != nil {
		t, ok := parseDate(*patch.EndDate)
		if !ok {
			return changed, &clarification{prompt: "I didn't catch the return date. Could you give it once more, with the day and the time?"}
		}
		dst.EndDate = &t
		changed = true
	}
	if dst.StartDate != nil && dst.EndDate != nil && !dst.EndDate.After(*dst.StartDate) {
		dst.EndDate = nil
		return changed, &clarification{prompt: "The return date has to be after the pickup date. When would you like to bring the van back?"}
	}
	if patch.DriverAge != nil {
		if *patch.DriverAge < minDriverAge || *patch.DriverAge > maxDriverAge {
			return changed, &clarification{prompt: "Our drivers need to be at least 18. What is the driver's age?"}
		}
		dst.DriverAge = patch.DriverAge
		changed = true
	}
	if patch.Phone != nil {
		phone := normalizePhone(*patch.Phone)
		if phone == "" {
			return changed, &clarification{prompt: "I couldn't make out that phone number. Could you repeat it digit by digit?"}
		}
		dst.Phone = &phone
		changed = true
	}
	if patch.Name != nil && *patch.Name != "" {
		dst.Name = patch.Name
		changed = true
	}
	if patch.Message != nil && *patch.Message != "" {
		dst.Message = patch.Message
		changed = true
	}
	return changed, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizePhone strips everything but digits (keeping a leading +) and
// rejects numbers too short to dial.
func normalizePhone(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimPrefix(b.String(), "+")
	if len(digits) < 7 {
		return ""
	}
	return b.String()
}
