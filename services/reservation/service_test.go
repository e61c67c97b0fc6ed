package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	reservationRepo "vango/database/repository/reservation"
	"vango/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeRepo struct {
	byID        map[string]*models.Reservation
	overlapping []models.Window
	created     []*models.Reservation
	statuses    map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*models.Reservation{}, statuses: map[string]string{}}
}

func (f *fakeRepo) GetByID(id string) (*models.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return res, nil
}
func (f *fakeRepo) GetAll(filter reservationRepo.ReservationFilter) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeRepo) FindOverlapping(officeID, categoryID string, start, end time.Time) ([]models.Window, error) {
	return f.overlapping, nil
}
func (f *fakeRepo) Create(res *models.Reservation) error {
	f.created = append(f.created, res)
	f.byID[res.ID] = res
	return nil
}
func (f *fakeRepo) UpdateStatus(id, status string) error {
	f.statuses[id] = status
	return nil
}
func (f *fakeRepo) Delete(id string) error { return nil }
func (f *fakeRepo) CountByStatus() ([]reservationRepo.StatusCount, error) {
	return nil, nil
}
func (f *fakeRepo) RevenueByCategory() ([]reservationRepo.RevenueBucket, error) {
	return nil, nil
}
func (f *fakeRepo) RevenueByOffice() ([]reservationRepo.RevenueBucket, error) {
	return nil, nil
}

type fakeLocker struct {
	denied   bool
	acquired []string
	released []string
}

func (f *fakeLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.denied {
		return false, nil
	}
	f.acquired = append(f.acquired, key)
	return true, nil
}
func (f *fakeLocker) Release(ctx context.Context, key string) error {
	f.released = append(f.released, key)
	return nil
}

// ---- tests ----

func TestOverlaps(t *testing.T) {
	day := func(d, h int) time.Time {
		return time.Date(2025, 6, d, h, 0, 0, 0, time.UTC)
	}

	existing := models.Window{Start: day(1, 9), End: day(3, 9)}

	// Fully inside the existing window.
	assert.True(t, Overlaps(existing, models.Window{Start: day(2, 0), End: day(2, 12)}))

	// Touching boundary: new rental starts exactly when the old one ends.
	assert.False(t, Overlaps(existing, models.Window{Start: day(3, 9), End: day(5, 9)}))

	// Touching boundary the other way.
	assert.False(t, Overlaps(existing, models.Window{Start: day(1, 0), End: day(1, 9)}))

	// Partial overlap at the front.
	assert.True(t, Overlaps(existing, models.Window{Start: day(1, 0), End: day(1, 10)}))

	// Disjoint.
	assert.False(t, Overlaps(existing, models.Window{Start: day(4, 0), End: day(5, 0)}))
}

func testReservation() *models.Reservation {
	return &models.Reservation{
		OfficeID:   "office-1",
		CategoryID: "cat-m",
		UserID:     "user-1",
		StartDate:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
		DriverAge:  30,
		TotalPrice: 384,
	}
}

func TestCreateAcquiresAndReleasesSlotLock(t *testing.T) {
	repo := newFakeRepo()
	locker := &fakeLocker{}
	svc := &DefaultReservationService{Repo: repo, Locks: locker}

	res := testReservation()
	require.NoError(t, svc.Create(context.Background(), res))

	require.Len(t, locker.acquired, 1)
	assert.Equal(t, locker.acquired, locker.released)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, models.ReservationPending, res.Status)
	require.Len(t, repo.created, 1)
}

func TestCreateConflictWhenSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	repo.overlapping = []models.Window{{
		Start: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}}
	svc := &DefaultReservationService{Repo: repo, Locks: &fakeLocker{}}

	err := svc.Create(context.Background(), testReservation())
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Len(t, conflict.Windows, 1)
	assert.Empty(t, repo.created)
}

func TestCreateConflictOnLockContention(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultReservationService{Repo: repo, Locks: &fakeLocker{denied: true}}

	err := svc.Create(context.Background(), testReservation())
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Empty(t, repo.created)
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.ReservationPending, models.ReservationConfirmed, true},
		{models.ReservationPending, models.ReservationCanceled, true},
		{models.ReservationPending, models.ReservationCompleted, false},
		{models.ReservationConfirmed, models.ReservationDelivered, true},
		{models.ReservationConfirmed, models.ReservationPending, false},
		{models.ReservationDelivered, models.ReservationCompleted, true},
		{models.ReservationCompleted, models.ReservationCanceled, false},
		{models.ReservationCanceled, models.ReservationConfirmed, false},
	}

	for _, tc := range cases {
		repo := newFakeRepo()
		repo.byID["r1"] = &models.Reservation{ID: "r1", Status: tc.from}
		svc := &DefaultReservationService{Repo: repo, Locks: &fakeLocker{}}

		err := svc.UpdateStatus(context.Background(), "r1", tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, repo.statuses["r1"])
		} else {
			var transition *TransitionError
			require.ErrorAs(t, err, &transition, "%s -> %s", tc.from, tc.to)
			assert.Empty(t, repo.statuses["r1"])
		}
	}
}

func TestSlotKeyIsStable(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	a := SlotKey("office-1", "cat-m", start, end)
	b := SlotKey("office-1", "cat-m", start, end)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, SlotKey("office-2", "cat-m", start, end))
}
