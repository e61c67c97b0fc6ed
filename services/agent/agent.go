package agent

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"vango/models"
	"vango/services/pricing"
	"vango/services/reservation"
	"vango/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// stuckThreshold is how many consecutive turns without any extracted progress
// mark the conversation as stuck, so callers can hand off to a human.
const stuckThreshold = 2

// ProcessTurn advances the dialogue by one turn. The input state is never
// mutated: a failed turn returns an error and the caller can resubmit the
// same transcript against the same state.
func (s *DefaultAgentService) ProcessTurn(ctx context.Context, req models.AgentTurnRequest) (*models.AgentTurnResponse, error) {
	logger := utils.GetLogger()

	transcript := strings.TrimSpace(req.Transcript)
	if transcript == "" {
		return nil, inputErr("transcript is required")
	}

	state := models.NewConversationState()
	if req.State != nil {
		state = *req.State
	}
	if state.Phase == "" {
		state.Phase = models.PhaseDiscovery
	}

	// Terminal phase: nothing left to extract or transition.
	if state.Phase == models.PhaseComplete {
		message := fmt.Sprintf("Your reservation %s is all set. Anything else I can help with?", state.ReservationID)
		return s.respond(ctx, state, message, models.ActionBooked), nil
	}

	// The state round-trips through the client, so its invariants have to be
	// re-checked on every turn before anything dereferences them.
	if err := validateState(state); err != nil {
		return nil, err
	}

	ragCtx, categories, err := s.buildRAGContext()
	if err != nil {
		return nil, upstreamErr("failed to assemble conversation context", err)
	}

	ext, err := s.LLM.Advance(ctx, AdvanceInput{
		Transcript: transcript,
		State:      state,
		History:    req.History,
		RAGContext: ragCtx,
	})
	if err != nil {
		return nil, upstreamErr("language model call failed", err)
	}

	next := state
	progress := false

	if ext.Needs != nil && mergeNeeds(&next.Needs, *ext.Needs) {
		progress = true
	}
	var clarify *clarification
	if ext.Booking != nil {
		var changed bool
		changed, clarify = applyBookingPatch(&next.Booking, *ext.Booking)
		progress = progress || changed
	}
	if clarify != nil {
		// A malformed field only triggers a follow-up question; whatever
		// parsed cleanly this turn is kept and no phase changes.
		s.trackProgress(&next, progress)
		return s.respond(ctx, next, clarify.prompt, models.ActionAsk), nil
	}

	windowChanged := !timesEqual(state.Booking.StartDate, next.Booking.StartDate) ||
		!timesEqual(state.Booking.EndDate, next.Booking.EndDate) ||
		!stringsEqual(state.Booking.OfficeID, next.Booking.OfficeID)

	action := models.ActionAsk
	message := strings.TrimSpace(ext.Message)

	switch state.Phase {
	case models.PhaseDiscovery:
		if ext.ReadyToRecommend || enoughSignal(next.Needs) {
			if rec := recommendCategory(next.Needs, categories); rec != nil {
				next.Recommended = &models.RecommendedCategory{ID: rec.ID, Name: rec.Name}
				next.Phase = models.PhaseRecommendation
				action = models.ActionRecommend
				progress = true
				if message == "" {
					message = fmt.Sprintf("For that I'd suggest our %s: %.1f m3 of cargo space and a %.0f kg payload. Shall we book it?",
						rec.Name, rec.CargoVolumeM3, rec.PayloadKg)
				}
			}
		}

	case models.PhaseRecommendation:
		if ext.RecommendationAccepted != nil {
			if *ext.RecommendationAccepted {
				next.Phase = models.PhaseBooking
				progress = true
				if message == "" {
					message = "Great. Which office would you like to pick up from, and when do you need the van?"
				}
			} else if rec := recommendCategory(next.Needs, categories); rec != nil {
				// Rejection with new constraints loops within the phase.
				if next.Recommended == nil || next.Recommended.ID != rec.ID {
					progress = true
				}
				next.Recommended = &models.RecommendedCategory{ID: rec.ID, Name: rec.Name}
				action = models.ActionRecommend
				if message == "" {
					message = fmt.Sprintf("Understood. How about the %s instead?", rec.Name)
				}
			}
		} else {
			action = models.ActionRecommend
		}
	}

	// Once every booking field is in, run the availability gate. This also
	// catches corrections made during confirmation that moved the window.
	if next.Phase == models.PhaseBooking && next.Recommended != nil && next.Booking.Complete() {
		next.Phase = models.PhaseAvailability
	}
	if state.Phase == models.PhaseConfirmation && windowChanged && next.Recommended != nil && next.Booking.Complete() {
		next.Phase = models.PhaseAvailability
	}

	if next.Phase == models.PhaseAvailability {
		resolved, resolvedAction, resolvedMsg, err := s.resolveAvailability(ctx, &next)
		if err != nil {
			return nil, err
		}
		if resolved {
			// The model never sees the computed price, so the service-built
			// message wins for both outcomes.
			action = resolvedAction
			message = resolvedMsg
			progress = true
		}
	}

	if next.Phase == models.PhaseConfirmation {
		if action == models.ActionAsk {
			action = models.ActionConfirm
		}
		if ext.Confirmed != nil && *ext.Confirmed {
			if next.Booking.Phone == nil {
				message = "Perfect. What phone number should we put the reservation under?"
				action = models.ActionConfirm
			} else {
				finalMsg, finalAction, err := s.finalize(ctx, &next)
				if err != nil {
					return nil, err
				}
				message = finalMsg
				action = finalAction
				progress = true
			}
		} else if message == "" {
			message = s.summary(next)
		}
	}

	if message == "" {
		message = "Could you tell me a bit more about what you're planning to move?"
	}

	s.trackProgress(&next, progress)
	if next.Stuck {
		logger.Warn("conversation made no progress for consecutive turns",
			zap.Int("turns", next.NoProgressTurns), zap.String("phase", string(next.Phase)))
	}

	return s.respond(ctx, next, message, action), nil
}

// validateState rejects inbound states that violate the dialogue invariants:
// a category must be recommended before the booking phase, and every booking
// field must be present before confirmation. Violations are input errors, not
// server faults.
func validateState(state models.ConversationState) error {
	switch state.Phase {
	case models.PhaseDiscovery, models.PhaseRecommendation:
		return nil
	case models.PhaseBooking:
		if state.Recommended == nil {
			return inputErr("conversation state is missing the recommended category")
		}
	case models.PhaseAvailability, models.PhaseConfirmation:
		if state.Recommended == nil {
			return inputErr("conversation state is missing the recommended category")
		}
		if !state.Booking.Complete() {
			return inputErr("conversation state is missing required booking fields")
		}
	default:
		return inputErr(fmt.Sprintf("unknown conversation phase %q", state.Phase))
	}
	return nil
}

// resolveAvailability runs the availability gate: a clear slot moves the
// dialogue to confirmation with a fresh quote, a conflict loops back to
// booking for new dates.
func (s *DefaultAgentService) resolveAvailability(ctx context.Context, next *models.ConversationState) (bool, string, string, error) {
	b := next.Booking

	category, err := s.Categories.GetByID(next.Recommended.ID)
	if err != nil {
		return false, "", "", upstreamErr("failed to load recommended category", err)
	}
	if category.MinDriverAge > 0 && *b.DriverAge < category.MinDriverAge {
		next.Phase = models.PhaseBooking
		next.Booking.DriverAge = nil
		msg := fmt.Sprintf("Drivers of the %s need to be at least %d. Will someone of that age be driving, and how old are they?",
			next.Recommended.Name, category.MinDriverAge)
		return true, models.ActionAsk, msg, nil
	}

	conflicts, err := s.Reservations.CheckAvailability(ctx, *b.OfficeID, next.Recommended.ID, *b.StartDate, *b.EndDate)
	if err != nil {
		return false, "", "", upstreamErr("availability check failed", err)
	}
	if len(conflicts) > 0 {
		next.Phase = models.PhaseBooking
		msg := fmt.Sprintf("Unfortunately that %s is already reserved from %s to %s. Could you pick different dates?",
			next.Recommended.Name,
			conflicts[0].Start.Format("Jan 2 15:04"),
			conflicts[0].End.Format("Jan 2 15:04"))
		return true, models.ActionConflict, msg, nil
	}

	quote, err := s.quote(next)
	if err != nil {
		return false, "", "", err
	}
	next.Quote = quote
	next.Phase = models.PhaseConfirmation
	return true, models.ActionConfirm, s.summary(*next), nil
}

func (s *DefaultAgentService) quote(next *models.ConversationState) (*models.PriceQuote, error) {
	tiers, err := s.Categories.GetRateTable(next.Recommended.ID)
	if err != nil {
		return nil, integrityErr("failed to load rate table", err)
	}
	billable, total, err := pricing.Quote(*next.Booking.StartDate, *next.Booking.EndDate, tiers)
	if err != nil {
		// A tier gap here is a configuration defect, never the customer's
		// fault; it must not collapse into a zero price.
		return nil, integrityErr("failed to price rental", err)
	}
	return &models.PriceQuote{
		BillableDays:  billable.Days,
		BillableHours: billable.Hours,
		Total:         total,
	}, nil
}

// finalize matches or creates the customer by phone and writes the
// reservation. A write conflict means someone grabbed the slot between our
// check and the insert: back to booking for new dates.
func (s *DefaultAgentService) finalize(ctx context.Context, next *models.ConversationState) (string, string, error) {
	b := next.Booking

	// The state round-trips through the client, so the quote it carries is
	// untrusted. The stored price always comes from the rate table.
	quote, err := s.quote(next)
	if err != nil {
		return "", "", err
	}
	next.Quote = quote

	user, err := s.Users.GetByPhone(*b.Phone)
	if err != nil {
		return "", "", upstreamErr("failed to look up customer", err)
	}
	if user == nil {
		name := "Guest"
		if b.Name != nil {
			name = *b.Name
		}
		user = &models.User{
			ID:    uuid.NewString(),
			Name:  name,
			Phone: *b.Phone,
			Role:  models.RoleCustomer,
		}
		if err := s.Users.Create(user); err != nil {
			return "", "", upstreamErr("failed to create customer", err)
		}
	}

	res := &models.Reservation{
		OfficeID:   *b.OfficeID,
		CategoryID: next.Recommended.ID,
		UserID:     user.ID,
		StartDate:  *b.StartDate,
		EndDate:    *b.EndDate,
		DriverAge:  *b.DriverAge,
		TotalPrice: quote.Total,
		Status:     models.ReservationPending,
	}
	if b.Message != nil {
		res.Message = *b.Message
	}

	if err := s.Reservations.Create(ctx, res); err != nil {
		var conflict *reservation.ConflictError
		if errors.As(err, &conflict) {
			next.Phase = models.PhaseBooking
			next.Quote = nil
			return "I'm sorry, that slot was just taken by another customer. Could you pick different dates?", models.ActionConflict, nil
		}
		return "", "", upstreamErr("failed to create reservation", err)
	}

	next.Phase = models.PhaseComplete
	next.ReservationID = res.ID
	msg := fmt.Sprintf("You're booked! Reservation %s: %s from %s, total %.2f. We'll see you then.",
		res.ID, next.Recommended.Name, res.StartDate.Format("Jan 2 15:04"), res.TotalPrice)
	return msg, models.ActionBooked, nil
}

// summary renders the confirmation recap presented before the final yes.
func (s *DefaultAgentService) summary(state models.ConversationState) string {
	b := state.Booking
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's your booking: %s", state.Recommended.Name)
	if b.StartDate != nil && b.EndDate != nil {
		fmt.Fprintf(&sb, ", pickup %s, return %s", b.StartDate.Format("Jan 2 15:04"), b.EndDate.Format("Jan 2 15:04"))
	}
	if b.DriverAge != nil {
		fmt.Fprintf(&sb, ", driver age %d", *b.DriverAge)
	}
	if state.Quote != nil {
		fmt.Fprintf(&sb, ". Total: %.2f", state.Quote.Total)
	}
	sb.WriteString(". Shall I confirm it? I'll just need a phone number for the reservation.")
	return sb.String()
}

func (s *DefaultAgentService) trackProgress(next *models.ConversationState, progress bool) {
	if progress {
		next.NoProgressTurns = 0
		next.Stuck = false
		return
	}
	next.NoProgressTurns++
	if next.NoProgressTurns >= stuckThreshold {
		next.Stuck = true
	}
}

// respond renders the reply, synthesizing audio on a best-effort basis: a
// speech failure degrades the turn to text-only instead of failing it.
func (s *DefaultAgentService) respond(ctx context.Context, state models.ConversationState, message, action string) *models.AgentTurnResponse {
	resp := &models.AgentTurnResponse{
		Message:       message,
		State:         state,
		Action:        action,
		IsComplete:    state.Phase == models.PhaseComplete,
		ReservationID: state.ReservationID,
	}
	if s.Speech != nil {
		audio, err := s.Speech.Synthesize(ctx, message)
		if err != nil {
			utils.GetLogger().Warn("speech synthesis failed, returning text only", zap.Error(err))
			resp.AudioWarning = "speech synthesis unavailable"
		} else {
			resp.Audio = base64.StdEncoding.EncodeToString(audio)
		}
	}
	return resp
}

func timesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func stringsEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
