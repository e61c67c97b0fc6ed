package models

// AgentTurnRequest is the payload coming from the voice client into
// /api/agent/turn. The client is the system of record for state and history.
type AgentTurnRequest struct {
	Transcript string                `json:"transcript"`
	State      *ConversationState    `json:"state,omitempty"`
	History    []ConversationMessage `json:"history,omitempty"`
}

// Agent actions returned to the client alongside the reply.
const (
	ActionAsk       = "ask"       // agent needs more information
	ActionRecommend = "recommend" // agent proposed a category
	ActionConfirm   = "confirm"   // agent presented the summary and asked to confirm
	ActionConflict  = "conflict"  // requested window is taken, new dates needed
	ActionBooked    = "booked"    // reservation created
)

// AgentTurnResponse is what the turn endpoint returns.
type AgentTurnResponse struct {
	Message       string            `json:"message"`
	Audio         string            `json:"audio,omitempty"` // base64 MP3; empty when synthesis failed
	AudioWarning  string            `json:"audioWarning,omitempty"`
	State         ConversationState `json:"state"`
	Action        string            `json:"action"`
	IsComplete    bool              `json:"isComplete"`
	ReservationID string            `json:"reservationId,omitempty"`
}

// BookingPatch is the per-turn structured update the language model extracts
// for the booking fields. Dates arrive as RFC 3339 strings and are parsed by
// the agent; a nil field means "not mentioned this turn".
type BookingPatch struct {
	OfficeID  *string `json:"officeId,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	DriverAge *int    `json:"driverAge,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Name      *string `json:"name,omitempty"`
	Message   *string `json:"message,omitempty"`
}

// AgentExtraction is the structured result of one language-model call: the
// reply to speak plus whatever the model managed to extract this turn.
type AgentExtraction struct {
	Message                string         `json:"message"`
	Needs                  *CustomerNeeds `json:"needs,omitempty"`
	Booking                *BookingPatch  `json:"booking,omitempty"`
	ReadyToRecommend       bool           `json:"readyToRecommend,omitempty"`
	RecommendationAccepted *bool          `json:"recommendationAccepted,omitempty"`
	Confirmed              *bool          `json:"confirmed,omitempty"`
}
