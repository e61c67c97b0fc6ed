package agent

import "vango/models"

// enoughSignal is the discovery gate: we can recommend once we know anything
// concrete about the load or the people traveling. The model can also force
// the gate with readyToRecommend.
func enoughSignal(needs models.CustomerNeeds) bool {
	return needs.CargoVolumeM3 != nil ||
		needs.WeightKg != nil ||
		needs.Passengers != nil ||
		needs.CargoDescription != ""
}

// recommendCategory picks the smallest category whose specs cover the
// discovered needs, falling back to the largest one when nothing is big
// enough. Returns nil only when no categories exist at all.
func recommendCategory(needs models.CustomerNeeds, categories []models.Category) *models.Category {
	var best *models.Category
	var largest *models.Category

	for i := range categories {
		c := &categories[i]
		if largest == nil || c.CargoVolumeM3 > largest.CargoVolumeM3 {
			largest = c
		}
		if !fits(needs, c) {
			continue
		}
		if best == nil || c.CargoVolumeM3 < best.CargoVolumeM3 {
			best = c
		}
	}
	if best != nil {
		return best
	}
	return largest
}

func fits(needs models.CustomerNeeds, c *models.Category) bool {
	if needs.CargoVolumeM3 != nil && c.CargoVolumeM3 < *needs.CargoVolumeM3 {
		return false
	}
	if needs.WeightKg != nil && c.PayloadKg < *needs.WeightKg {
		return false
	}
	if needs.Passengers != nil && c.Seats < *needs.Passengers {
		return false
	}
	return true
}
