package agent

import (
	"fmt"
	"strings"

	"vango/models"
)

// buildRAGContext assembles the office and category facts given to the
// language model each turn. A pure data fetch; the categories are returned as
// well so the recommendation step reuses them without a second query.
func (s *DefaultAgentService) buildRAGContext() (string, []models.Category, error) {
	offices, err := s.Offices.GetAll()
	if err != nil {
		return "", nil, fmt.Errorf("failed to load offices: %w", err)
	}
	categories, err := s.Categories.GetAll()
	if err != nil {
		return "", nil, fmt.Errorf("failed to load categories: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Rental offices:\n")
	for _, o := range offices {
		fmt.Fprintf(&sb, "- id=%s name=%q city=%s address=%q\n", o.ID, o.Name, o.City, o.Address)
	}
	sb.WriteString("Vehicle categories:\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "- id=%s name=%q cargo=%.1fm3 payload=%.0fkg seats=%d\n",
			c.ID, c.Name, c.CargoVolumeM3, c.PayloadKg, c.Seats)
	}
	return sb.String(), categories, nil
}
