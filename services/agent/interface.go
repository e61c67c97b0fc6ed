package agent

import (
	"context"

	categoryRepo "vango/database/repository/category"
	officeRepo "vango/database/repository/office"
	userRepo "vango/database/repository/user"
	"vango/models"
	"vango/services/reservation"
)

// AdvanceInput is everything the language model sees for one turn.
type AdvanceInput struct {
	Transcript string
	State      models.ConversationState
	History    []models.ConversationMessage
	RAGContext string
}

// LLM is the single seam to the language model: one call per turn that
// extracts fields and drafts the reply. Non-deterministic and network-bound,
// but treated as a pure function by the state machine.
type LLM interface {
	Advance(ctx context.Context, in AdvanceInput) (*models.AgentExtraction, error)
}

// Speech renders the assistant's reply to audio. Failures degrade the turn to
// text-only; they never fail it.
type Speech interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Service runs one dialogue turn. State goes in and comes out on every call;
// the caller is the system of record.
type Service interface {
	ProcessTurn(ctx context.Context, req models.AgentTurnRequest) (*models.AgentTurnResponse, error)
}

// DefaultAgentService implements Service.
type DefaultAgentService struct {
	LLM          LLM
	Speech       Speech
	Offices      officeRepo.OfficeRepository
	Categories   categoryRepo.CategoryRepository
	Users        userRepo.UserRepository
	Reservations reservation.Service
}
