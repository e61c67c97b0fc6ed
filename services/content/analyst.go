package content

import (
	"context"
	"fmt"
	"strings"

	reservationRepo "vango/database/repository/reservation"
	"vango/services/intelligence"
)

// AnalystService answers business questions by assembling reservation
// aggregates into prompt context and letting the model interpret them. One
// question, one answer; no dialogue state.
type AnalystService struct {
	Gemini       *intelligence.GeminiClient
	Reservations reservationRepo.ReservationRepository
}

// Ask answers one analytics question against the current reservation data.
func (s *AnalystService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required")
	}

	statuses, err := s.Reservations.CountByStatus()
	if err != nil {
		return "", fmt.Errorf("failed to aggregate statuses: %w", err)
	}
	byCategory, err := s.Reservations.RevenueByCategory()
	if err != nil {
		return "", fmt.Errorf("failed to aggregate category revenue: %w", err)
	}
	byOffice, err := s.Reservations.RevenueByOffice()
	if err != nil {
		return "", fmt.Errorf("failed to aggregate office revenue: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are the business analyst of a van rental company. Answer using only the data below.\n")
	sb.WriteString("If the data cannot answer the question, say so plainly.\n\n")
	sb.WriteString("Reservations by status:\n")
	for _, s := range statuses {
		fmt.Fprintf(&sb, "- %s: %d\n", s.Status, s.Count)
	}
	sb.WriteString("Revenue by category (non-canceled):\n")
	for _, b := range byCategory {
		fmt.Fprintf(&sb, "- %s: %d reservations, %.2f revenue\n", b.Key, b.Count, b.Revenue)
	}
	sb.WriteString("Revenue by office (non-canceled):\n")
	for _, b := range byOffice {
		fmt.Fprintf(&sb, "- %s: %d reservations, %.2f revenue\n", b.Key, b.Count, b.Revenue)
	}
	sb.WriteString("\nQuestion: " + question + "\n")

	answer, err := s.Gemini.GenerateContent(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("analyst generation failed: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
