package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	reservationRepo "vango/database/repository/reservation"
	"vango/models"
	"vango/services/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeLLM struct {
	ext *models.AgentExtraction
	err error
}

func (f *fakeLLM) Advance(ctx context.Context, in AdvanceInput) (*models.AgentExtraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ext, nil
}

type fakeSpeech struct {
	audio []byte
	err   error
}

func (f *fakeSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return f.audio, f.err
}

type fakeOfficeRepo struct {
	offices []models.Office
}

func (f *fakeOfficeRepo) GetByID(id string) (*models.Office, error) { return &f.offices[0], nil }

func (f *fakeOfficeRepo) GetAll() ([]models.Office, error) { return f.offices, nil }

func (f *fakeOfficeRepo) Create(o *models.Office) error { return nil }

func (f *fakeOfficeRepo) Update(o *models.Office) error { return nil }

func (f *fakeOfficeRepo) Delete(id string) error { return nil }

type fakeCategoryRepo struct {
	categories []models.Category
}

func (f *fakeCategoryRepo) GetByID(id string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, errors.New("not found")
}
func (f *fakeCategoryRepo) GetAll() ([]models.Category, error) { return f.categories, nil }
func (f *fakeCategoryRepo) GetRateTable(id string) ([]models.PricingTier, error) {
	c, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	return c.RateTable, nil
}
func (f *fakeCategoryRepo) Create(c *models.Category) error { return nil }
func (f *fakeCategoryRepo) Update(c *models.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(id string) error          { return nil }

type fakeUserRepo struct {
	byPhone map[string]*models.User
	created []*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) { return nil, errors.New("not found") }
func (f *fakeUserRepo) GetAll() ([]models.User, error)          { return nil, nil }
func (f *fakeUserRepo) GetByPhone(phone string) (*models.User, error) {
	return f.byPhone[phone], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(u *models.User) error {
	f.created = append(f.created, u)
	return nil
}
func (f *fakeUserRepo) Update(u *models.User) error { return nil }
func (f *fakeUserRepo) Delete(id string) error      { return nil }

type fakeReservationService struct {
	conflicts []models.Window
	createErr error
	created   []*models.Reservation
}

func (f *fakeReservationService) CheckAvailability(ctx context.Context, officeID, categoryID string, start, end time.Time) ([]models.Window, error) {
	return f.conflicts, nil
}
func (f *fakeReservationService) Create(ctx context.Context, res *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	res.ID = "res-1"
	f.created = append(f.created, res)
	return nil
}
func (f *fakeReservationService) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}
func (f *fakeReservationService) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	return nil, errors.New("not found")
}
func (f *fakeReservationService) List(ctx context.Context, filter reservationRepo.ReservationFilter) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationService) Delete(ctx context.Context, id string) error { return nil }

// ---- fixtures ----

var testRateTable = []models.PricingTier{
	{MinHours: 1, MaxHours: 23, PricePerHour: 10},
	{MinHours: 24, MaxHours: 167, PricePerHour: 8},
}

func newTestService(llm LLM, resSvc reservation.Service) *DefaultAgentService {
	return &DefaultAgentService{
		LLM:    llm,
		Speech: &fakeSpeech{audio: []byte("mp3")},
		Offices: &fakeOfficeRepo{offices: []models.Office{
			{ID: "office-1", Name: "Central", City: "Rotterdam"},
		}},
		Categories: &fakeCategoryRepo{categories: []models.Category{
			{ID: "cat-s", Name: "Compact", CargoVolumeM3: 3, PayloadKg: 600, Seats: 2, RateTable: testRateTable},
			{ID: "cat-m", Name: "Panel Van", CargoVolumeM3: 8, PayloadKg: 1000, Seats: 3, RateTable: testRateTable},
			{ID: "cat-l", Name: "Luton", CargoVolumeM3: 18, PayloadKg: 1200, Seats: 3, RateTable: testRateTable},
		}},
		Users:        &fakeUserRepo{byPhone: map[string]*models.User{}},
		Reservations: resSvc,
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func completeBookingState() models.ConversationState {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Hour)
	return models.ConversationState{
		Phase:       models.PhaseBooking,
		Recommended: &models.RecommendedCategory{ID: "cat-m", Name: "Panel Van"},
		Booking: models.BookingData{
			OfficeID:  strPtr("office-1"),
			StartDate: timePtr(start),
			EndDate:   timePtr(end),
			DriverAge: intPtr(30),
		},
	}
}

// ---- tests ----

func TestProcessTurnEmptyTranscript(t *testing.T) {
	svc := newTestService(&fakeLLM{ext: &models.AgentExtraction{Message: "hi"}}, &fakeReservationService{})

	_, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{Transcript: "   "})
	require.Error(t, err)

	var turnErr *TurnError
	require.ErrorAs(t, err, &turnErr)
	assert.Equal(t, KindInput, turnErr.Kind)
}

func TestDiscoveryMovesToRecommendation(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message: "Got it, you're moving furniture.",
		Needs:   &models.CustomerNeeds{CargoVolumeM3: floatPtr(6), CargoDescription: "furniture"},
	}}
	svc := newTestService(llm, &fakeReservationService{})

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "I need to move a two-room apartment",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseRecommendation, resp.State.Phase)
	assert.Equal(t, models.ActionRecommend, resp.Action)
	require.NotNil(t, resp.State.Recommended)
	// Smallest category that still fits 6 m3.
	assert.Equal(t, "cat-m", resp.State.Recommended.ID)
}

func TestEmptyExtractionPreservesNeeds(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{Message: "Could you say more?"}}
	svc := newTestService(llm, &fakeReservationService{})

	state := models.ConversationState{
		Phase: models.PhaseRecommendation,
		Needs: models.CustomerNeeds{
			CargoDescription: "piano",
			WeightKg:         floatPtr(300),
		},
		Recommended: &models.RecommendedCategory{ID: "cat-m", Name: "Panel Van"},
	}

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "uh, what was I saying",
		State:      &state,
	})
	require.NoError(t, err)

	// Nothing extracted: everything already known survives untouched.
	assert.Equal(t, "piano", resp.State.Needs.CargoDescription)
	require.NotNil(t, resp.State.Needs.WeightKg)
	assert.Equal(t, 300.0, *resp.State.Needs.WeightKg)
	assert.Equal(t, 1, resp.State.NoProgressTurns)
	assert.False(t, resp.State.Stuck)
}

func TestStuckAfterConsecutiveNoProgressTurns(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{Message: "Sorry, could you repeat that?"}}
	svc := newTestService(llm, &fakeReservationService{})

	state := models.NewConversationState()
	req := models.AgentTurnRequest{Transcript: "mumble", State: &state}

	resp, err := svc.ProcessTurn(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.State.Stuck)

	req.State = &resp.State
	resp, err = svc.ProcessTurn(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.State.Stuck)
	assert.Equal(t, 2, resp.State.NoProgressTurns)
}

func TestPhaseNeverRegressesOnIdleTurn(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{Message: "Anything else?"}}
	svc := newTestService(llm, &fakeReservationService{})

	state := completeBookingState()
	state.Phase = models.PhaseConfirmation
	state.Quote = &models.PriceQuote{BillableDays: 2, Total: 384}

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "hmm let me think",
		State:      &state,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseConfirmation, resp.State.Phase)
}

func TestAvailabilityClearSlotQuotesAndConfirms(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message: "Let me check that for you.",
		Booking: &models.BookingPatch{DriverAge: intPtr(30)},
	}}
	svc := newTestService(llm, &fakeReservationService{})

	state := completeBookingState()
	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "the driver is 30",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseConfirmation, resp.State.Phase)
	assert.Equal(t, models.ActionConfirm, resp.Action)
	require.NotNil(t, resp.State.Quote)
	// 30h rounds up to 2 billable days: 48h at the day-tier rate of 8.
	assert.Equal(t, 2, resp.State.Quote.BillableDays)
	assert.Equal(t, 0, resp.State.Quote.BillableHours)
	assert.Equal(t, 384.0, resp.State.Quote.Total)
	assert.Contains(t, resp.Message, "384.00")
}

func TestAvailabilityConflictLoopsBackToBooking(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message: "Checking availability.",
		Booking: &models.BookingPatch{DriverAge: intPtr(30)},
	}}
	conflictStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	resSvc := &fakeReservationService{conflicts: []models.Window{
		{Start: conflictStart, End: conflictStart.Add(12 * time.Hour)},
	}}
	svc := newTestService(llm, resSvc)

	state := completeBookingState()
	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "the driver is 30",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseBooking, resp.State.Phase)
	assert.Equal(t, models.ActionConflict, resp.Action)
	assert.Contains(t, resp.Message, "already reserved")
}

func TestConfirmationCreatesReservation(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message:   "Confirming now.",
		Confirmed: boolPtr(true),
	}}
	resSvc := &fakeReservationService{}
	svc := newTestService(llm, resSvc)

	state := completeBookingState()
	state.Phase = models.PhaseConfirmation
	state.Booking.Phone = strPtr("+31612345678")
	state.Quote = &models.PriceQuote{BillableDays: 2, Total: 384}

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "yes, book it",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseComplete, resp.State.Phase)
	assert.Equal(t, models.ActionBooked, resp.Action)
	assert.True(t, resp.IsComplete)
	assert.Equal(t, "res-1", resp.ReservationID)

	require.Len(t, resSvc.created, 1)
	created := resSvc.created[0]
	assert.Equal(t, "office-1", created.OfficeID)
	assert.Equal(t, "cat-m", created.CategoryID)
	assert.Equal(t, models.ReservationPending, created.Status)
	assert.Equal(t, 384.0, created.TotalPrice)
}

func TestConfirmationAsksForPhoneFirst(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message:   "Great.",
		Confirmed: boolPtr(true),
	}}
	resSvc := &fakeReservationService{}
	svc := newTestService(llm, resSvc)

	state := completeBookingState()
	state.Phase = models.PhaseConfirmation
	state.Quote = &models.PriceQuote{BillableDays: 2, Total: 384}

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "yes please",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseConfirmation, resp.State.Phase)
	assert.Contains(t, resp.Message, "phone number")
	assert.Empty(t, resSvc.created)
}

func TestCreateRaceLoopsBackToBooking(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message:   "Booking it now.",
		Confirmed: boolPtr(true),
	}}
	resSvc := &fakeReservationService{createErr: &reservation.ConflictError{}}
	svc := newTestService(llm, resSvc)

	state := completeBookingState()
	state.Phase = models.PhaseConfirmation
	state.Booking.Phone = strPtr("+31612345678")
	state.Quote = &models.PriceQuote{BillableDays: 2, Total: 384}

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "yes",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseBooking, resp.State.Phase)
	assert.Equal(t, models.ActionConflict, resp.Action)
	assert.Nil(t, resp.State.Quote)
	assert.Contains(t, resp.Message, "just taken")
}

func TestUpstreamFailureLeavesStateUnchanged(t *testing.T) {
	llm := &fakeLLM{err: errors.New("model timeout")}
	svc := newTestService(llm, &fakeReservationService{})

	state := completeBookingState()
	before := state

	_, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "hello?",
		State:      &state,
	})
	require.Error(t, err)

	var turnErr *TurnError
	require.ErrorAs(t, err, &turnErr)
	assert.Equal(t, KindUpstream, turnErr.Kind)

	// The caller's state must survive a failed turn byte for byte.
	assert.Equal(t, before.Phase, state.Phase)
	assert.Equal(t, before.Booking, state.Booking)
	assert.Equal(t, before.NoProgressTurns, state.NoProgressTurns)
}

func TestMissingRateTierFailsLoudly(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message: "Checking.",
		Booking: &models.BookingPatch{DriverAge: intPtr(30)},
	}}
	svc := newTestService(llm, &fakeReservationService{})
	// Rate table with a hole above 23 hours.
	svc.Categories = &fakeCategoryRepo{categories: []models.Category{
		{ID: "cat-m", Name: "Panel Van", CargoVolumeM3: 8, PayloadKg: 1000, Seats: 3,
			RateTable: []models.PricingTier{{MinHours: 1, MaxHours: 23, PricePerHour: 10}}},
	}}

	state := completeBookingState()
	_, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "driver is 30",
		State:      &state,
	})
	require.Error(t, err)

	var turnErr *TurnError
	require.ErrorAs(t, err, &turnErr)
	assert.Equal(t, KindIntegrity, turnErr.Kind)
}

func TestMalformedDateAsksForClarification(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message: "Noted.",
		Booking: &models.BookingPatch{
			OfficeID:  strPtr("office-1"),
			StartDate: strPtr("next tuesday-ish"),
		},
	}}
	svc := newTestService(llm, &fakeReservationService{})

	state := models.ConversationState{Phase: models.PhaseBooking,
		Recommended: &models.RecommendedCategory{ID: "cat-m", Name: "Panel Van"}}
	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "pick up next tuesday-ish from central",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ActionAsk, resp.Action)
	assert.Equal(t, models.PhaseBooking, resp.State.Phase)
	assert.Contains(t, resp.Message, "pickup date")
	// The office parsed cleanly and is kept even though the date was not.
	require.NotNil(t, resp.State.Booking.OfficeID)
	assert.Equal(t, "office-1", *resp.State.Booking.OfficeID)
}

func TestSpeechFailureDegradesToTextOnly(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{Message: "Hello there."}}
	svc := newTestService(llm, &fakeReservationService{})
	svc.Speech = &fakeSpeech{err: errors.New("tts quota exhausted")}

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "hi",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.Audio)
	assert.Equal(t, "speech synthesis unavailable", resp.AudioWarning)
}

func TestCompletePhaseShortCircuits(t *testing.T) {
	llm := &fakeLLM{err: errors.New("must not be called")}
	svc := newTestService(llm, &fakeReservationService{})

	state := models.ConversationState{Phase: models.PhaseComplete, ReservationID: "res-9"}
	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "thanks!",
		State:      &state,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsComplete)
	assert.Equal(t, "res-9", resp.ReservationID)
	assert.Contains(t, resp.Message, "res-9")
}

func TestTamperedQuoteNeverSetsThePrice(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message:   "Confirming now.",
		Confirmed: boolPtr(true),
	}}
	resSvc := &fakeReservationService{}
	svc := newTestService(llm, resSvc)

	state := completeBookingState()
	state.Phase = models.PhaseConfirmation
	state.Booking.Phone = strPtr("+31612345678")
	// A client can send back any total it likes; the reservation must still
	// be priced from the rate table.
	state.Quote = &models.PriceQuote{BillableDays: 2, Total: 0.01}

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "yes, book it",
		State:      &state,
	})
	require.NoError(t, err)

	require.Len(t, resSvc.created, 1)
	assert.Equal(t, 384.0, resSvc.created[0].TotalPrice)
	require.NotNil(t, resp.State.Quote)
	assert.Equal(t, 384.0, resp.State.Quote.Total)
}

func TestMissingQuoteRecomputedOnConfirm(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message:   "Confirming now.",
		Confirmed: boolPtr(true),
	}}
	resSvc := &fakeReservationService{}
	svc := newTestService(llm, resSvc)

	state := completeBookingState()
	state.Phase = models.PhaseConfirmation
	state.Booking.Phone = strPtr("+31612345678")
	state.Quote = nil

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "yes",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseComplete, resp.State.Phase)
	require.Len(t, resSvc.created, 1)
	assert.Equal(t, 384.0, resSvc.created[0].TotalPrice)
}

func TestInvalidInboundStateRejected(t *testing.T) {
	withoutRecommendation := completeBookingState()
	withoutRecommendation.Recommended = nil

	confirmationWithoutCategory := completeBookingState()
	confirmationWithoutCategory.Phase = models.PhaseConfirmation
	confirmationWithoutCategory.Recommended = nil
	confirmationWithoutCategory.Booking.Phone = strPtr("+31612345678")

	confirmationWithoutDates := models.ConversationState{
		Phase:       models.PhaseConfirmation,
		Recommended: &models.RecommendedCategory{ID: "cat-m", Name: "Panel Van"},
	}

	unknownPhase := completeBookingState()
	unknownPhase.Phase = "teleporting"

	cases := []struct {
		name  string
		state models.ConversationState
	}{
		{"booking without a recommended category", withoutRecommendation},
		{"confirmation without a recommended category", confirmationWithoutCategory},
		{"confirmation without booking fields", confirmationWithoutDates},
		{"unknown phase", unknownPhase},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &fakeLLM{ext: &models.AgentExtraction{Message: "ok", Confirmed: boolPtr(true)}}
			svc := newTestService(llm, &fakeReservationService{})

			state := tc.state
			_, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
				Transcript: "yes",
				State:      &state,
			})
			require.Error(t, err)

			var turnErr *TurnError
			require.ErrorAs(t, err, &turnErr)
			assert.Equal(t, KindInput, turnErr.Kind)
		})
	}
}

func TestDriverBelowCategoryMinimumAge(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message: "Let me check that.",
		Booking: &models.BookingPatch{DriverAge: intPtr(19)},
	}}
	resSvc := &fakeReservationService{}
	svc := newTestService(llm, resSvc)
	svc.Categories.(*fakeCategoryRepo).categories[1].MinDriverAge = 21

	state := completeBookingState()
	state.Booking.DriverAge = nil

	resp, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "the driver is 19",
		State:      &state,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PhaseBooking, resp.State.Phase)
	assert.Equal(t, models.ActionAsk, resp.Action)
	assert.Nil(t, resp.State.Booking.DriverAge)
	assert.Contains(t, resp.Message, "21")
	assert.Empty(t, resSvc.created)
}

func TestGuestUserCreatedByPhone(t *testing.T) {
	llm := &fakeLLM{ext: &models.AgentExtraction{
		Message:   "Booking.",
		Confirmed: boolPtr(true),
	}}
	resSvc := &fakeReservationService{}
	svc := newTestService(llm, resSvc)
	users := svc.Users.(*fakeUserRepo)

	state := completeBookingState()
	state.Phase = models.PhaseConfirmation
	state.Booking.Phone = strPtr("+31698765432")
	state.Booking.Name = strPtr("Anna")
	state.Quote = &models.PriceQuote{BillableDays: 2, Total: 384}

	_, err := svc.ProcessTurn(context.Background(), models.AgentTurnRequest{
		Transcript: "yes",
		State:      &state,
	})
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	assert.Equal(t, "Anna", users.created[0].Name)
	assert.Equal(t, "+31698765432", users.created[0].Phone)
	assert.Equal(t, models.RoleCustomer, users.created[0].Role)
}
