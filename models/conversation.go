package models

import "time"

// Phase is a step in the booking dialogue. Phases only move forward, with a
// single exception: an availability conflict loops back to the booking phase.
type Phase string

const (
	PhaseDiscovery      Phase = "discovery"
	PhaseRecommendation Phase = "recommendation"
	PhaseBooking        Phase = "booking"
	PhaseAvailability   Phase = "availability"
	PhaseConfirmation   Phase = "confirmation"
	PhaseComplete       Phase = "complete"
)

// CustomerNeeds holds the free-form facts discovered during the discovery
// phase. Every field is optional; nil means "not mentioned yet".
type CustomerNeeds struct {
	CargoDescription string   `json:"cargoDescription,omitempty"`
	CargoVolumeM3    *float64 `json:"cargoVolumeM3,omitempty"`
	WeightKg         *float64 `json:"weightKg,omitempty"`
	Passengers       *int     `json:"passengers,omitempty"`
	DistanceKm       *float64 `json:"distanceKm,omitempty"`
}

// RecommendedCategory is the category the agent proposed to the customer.
type RecommendedCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingData holds the structured fields collected during the booking and
// confirmation phases. Fields stay nil until the customer supplies them and
// may be corrected at any phase before complete.
type BookingData struct {
	OfficeID  *string    `json:"officeId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	DriverAge *int       `json:"driverAge,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Message   *string    `json:"message,omitempty"`
}

// Complete reports whether all fields required to run the availability check
// are present. Phone is collected later, during confirmation.
func (b BookingData) Complete() bool {
	return b.OfficeID != nil && b.StartDate != nil && b.EndDate != nil && b.DriverAge != nil
}

// PriceQuote is the billable charge computed when the dialogue reaches
// confirmation, kept on the state so the summary and the final reservation
// agree on the amount.
type PriceQuote struct {
	BillableDays  int     `json:"billableDays"`
	BillableHours int     `json:"billableHours"`
	Total         float64 `json:"total"`
}

// ConversationState is the full dialogue state, round-tripped by the caller
// on every turn. The server holds no session of its own.
type ConversationState struct {
	Phase           Phase                `json:"phase"`
	Needs           CustomerNeeds        `json:"needs"`
	Recommended     *RecommendedCategory `json:"recommended,omitempty"`
	Booking         BookingData          `json:"booking"`
	Quote           *PriceQuote          `json:"quote,omitempty"`
	ReservationID   string               `json:"reservationId,omitempty"`
	NoProgressTurns int                  `json:"noProgressTurns,omitempty"`
	Stuck           bool                 `json:"stuck,omitempty"`
}

// NewConversationState returns the initial state for a fresh conversation.
func NewConversationState() ConversationState {
	return ConversationState{Phase: PhaseDiscovery}
}

// Conversation message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationMessage is one entry in the append-only dialogue transcript.
type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
