package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookingRepo "taskhive/database/repository/booking"
	profileRepo "taskhive/database/repository/profile"
	"taskhive/models"
	"taskhive/services/catalog"
)

// fakeBookingRepo is an in-memory BookingRepository with the same
// compare-and-set semantics as the mongo implementation.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	out := b
	return &out, nil
}

func (r *fakeBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByTasker(ctx context.Context, taskerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TaskerID != nil && *b.TaskerID == taskerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, expected models.BookingStatus, set bson.M) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != expected {
		return false, nil
	}
	applySet(&b, set)
	r.bookings[id] = b
	return true, nil
}

func (r *fakeBookingRepo) UpdateFields(ctx context.Context, id string, set bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	applySet(&b, set)
	r.bookings[id] = b
	return nil
}

func applySet(b *models.Booking, set bson.M) {
	for key, value := range set {
		switch key {
		case "status":
			b.Status = value.(models.BookingStatus)
		case "status_updated_at":
			b.StatusUpdatedAt = value.(time.Time)
		case "accepted_at":
			ts := value.(time.Time)
			b.AcceptedAt = &ts
		case "started_at":
			ts := value.(time.Time)
			b.StartedAt = &ts
		case "completed_at":
			ts := value.(time.Time)
			b.CompletedAt = &ts
		case "cancelled_at":
			ts := value.(time.Time)
			b.CancelledAt = &ts
		case "tasker_id":
			id := value.(string)
			b.TaskerID = &id
		case "tasker_name":
			b.TaskerName = value.(string)
		case "tasker_phone":
			b.TaskerPhone = value.(string)
		case "final_price":
			b.FinalPrice = value.(float64)
		case "payment_status":
			b.PaymentStatus = value.(string)
		case "payment_method":
			b.PaymentMethod = value.(string)
		}
	}
}

// fakeProfileRepo serves a fixed set of profiles by id.
type fakeProfileRepo struct {
	profiles map[string]models.Profile
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, profileRepo.ErrNotFound
	}
	out := p
	return &out, nil
}

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			out := p
			return &out, nil
		}
	}
	return nil, profileRepo.ErrNotFound
}

func (r *fakeProfileRepo) GetTaskers(ctx context.Context, skill string) ([]models.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, id string, set bson.M) error {
	return nil
}

// fakeScheduler records scheduled expirations.
type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []string
}

func (s *fakeScheduler) ScheduleExpiry(ctx context.Context, bookingID string, after time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, bookingID)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeScheduler) {
	repo := newFakeBookingRepo()
	scheduler := &fakeScheduler{}
	profiles := &fakeProfileRepo{profiles: map[string]models.Profile{
		"cust-1": {
			ID:      "cust-1",
			Role:    models.RoleCustomer,
			Name:    "Jamie Park",
			Phone:   "+12125550100",
			Address: "350 5th Ave, New York",
		},
		"tasker-1": {
			ID:         "tasker-1",
			Role:       models.RoleTasker,
			Name:       "Alex Rivera",
			Phone:      "+12125550111",
			HourlyRate: 50,
		},
	}}
	svc := &DefaultBookingService{
		Repo:     repo,
		Profiles: profiles,
		Catalog:  catalog.Default(),
		Expiry:   scheduler,
		Logger:   zap.NewNop(),
	}
	return svc, repo, scheduler
}

func createPending(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	booking, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ServiceID:  "furniture_assembly",
		CustomerID: "cust-1",
		TaskerID:   "tasker-1",
	})
	require.NoError(t, err)
	return booking
}

func TestCreateBookingDefaults(t *testing.T) {
	svc, _, scheduler := newTestService()

	booking := createPending(t, svc)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, models.PriorityNormal, booking.Priority)
	assert.Equal(t, "Furniture Assembly", booking.ServiceName)
	assert.Equal(t, "Jamie Park", booking.CustomerName)
	require.NotNil(t, booking.TaskerID)
	assert.Equal(t, "tasker-1", *booking.TaskerID)

	// Midpoint of 1-3 hours at 50/h.
	assert.Equal(t, 120, booking.EstimatedDurationMins)
	assert.InDelta(t, 100, booking.EstimatedPrice, 0.001)

	assert.Equal(t, []string{booking.ID}, scheduler.scheduled)
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ServiceID:  "no_such_service",
		CustomerID: "cust-1",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ServiceID:  "furniture_assembly",
		CustomerID: "ghost",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingEstimateOutOfRange(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ServiceID:         "furniture_assembly",
		CustomerID:        "cust-1",
		TaskerID:          "tasker-1",
		EstimatedDuration: 600, // range is 60-180 mins
		EstimatedPrice:    100,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestHappyPathLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	booking := createPending(t, svc)

	accepted, err := svc.Accept(ctx, booking.ID, "tasker-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, accepted.Status)
	require.NotNil(t, accepted.AcceptedAt)

	started, err := svc.Start(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingInProgress, started.Status)
	require.NotNil(t, started.StartedAt)

	completed, err := svc.Complete(ctx, booking.ID, 110)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, 110.0, completed.FinalPrice)
	assert.True(t, completed.Status.Terminal())

	assert.False(t, completed.CompletedAt.Before(*started.StartedAt))
	assert.False(t, started.StartedAt.Before(*accepted.AcceptedAt))
}

func TestStartRequiresAccepted(t *testing.T) {
	svc, _, _ := newTestService()
	booking := createPending(t, svc)

	_, err := svc.Start(context.Background(), booking.ID)
	var tErr *InvalidTransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, models.BookingPending, tErr.From)
	assert.Equal(t, models.BookingInProgress, tErr.To)
}

func TestCompleteRequiresFinalPrice(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	_, err := svc.Accept(ctx, booking.ID, "tasker-1")
	require.NoError(t, err)
	_, err = svc.Start(ctx, booking.ID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, booking.ID, 0)
	var pErr *PreconditionFailedError
	require.ErrorAs(t, err, &pErr)

	// Booking is untouched.
	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingInProgress, got.Status)
}

func TestTerminalStateRejectsTransitions(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	_, err := svc.Decline(ctx, booking.ID)
	require.NoError(t, err)

	_, err = svc.Accept(ctx, booking.ID, "tasker-1")
	var tErr *InvalidTransitionError
	require.ErrorAs(t, err, &tErr)

	_, err = svc.Cancel(ctx, booking.ID)
	require.ErrorAs(t, err, &tErr)
}

func TestCancelFromEveryActiveState(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	pending := createPending(t, svc)
	_, err := svc.Cancel(ctx, pending.ID)
	require.NoError(t, err)

	acceptedBooking := createPending(t, svc)
	_, err = svc.Accept(ctx, acceptedBooking.ID, "tasker-1")
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, acceptedBooking.ID)
	require.NoError(t, err)

	inProgress := createPending(t, svc)
	_, err = svc.Accept(ctx, inProgress.ID, "tasker-1")
	require.NoError(t, err)
	_, err = svc.Start(ctx, inProgress.ID)
	require.NoError(t, err)
	cancelled, err := svc.Cancel(ctx, inProgress.ID)
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancelledAt)
}

func TestConcurrentWriterLosesCompareAndSet(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	// Another writer moves the booking between our read and our write.
	moved, err := repo.UpdateStatus(ctx, booking.ID, models.BookingPending, bson.M{
		"status":            models.BookingCancelled,
		"status_updated_at": time.Now(),
	})
	require.NoError(t, err)
	require.True(t, moved)

	// Bypass the state-machine pre-check by hitting the repository directly:
	// the compare-and-set must refuse a stale expected status.
	matched, err := repo.UpdateStatus(ctx, booking.ID, models.BookingPending, bson.M{
		"status": models.BookingAccepted,
	})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestExpirePendingDeclines(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	require.NoError(t, svc.ExpirePending(ctx, booking.ID))

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingDeclined, got.Status)
}

func TestExpirePendingIsNoopAfterAccept(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	_, err := svc.Accept(ctx, booking.ID, "tasker-1")
	require.NoError(t, err)

	require.NoError(t, svc.ExpirePending(ctx, booking.ID))

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, got.Status)
}

func TestStats(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first := createPending(t, svc)
	second := createPending(t, svc)
	createPending(t, svc)

	_, err := svc.Accept(ctx, first.ID, "tasker-1")
	require.NoError(t, err)
	_, err = svc.Decline(ctx, second.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "cust-1", models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Accepted)
	assert.Equal(t, 1, stats.Declined)
}

func TestSearch(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	createPending(t, svc)

	matches, err := svc.Search(ctx, "cust-1", models.RoleCustomer, "furniture")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	none, err := svc.Search(ctx, "cust-1", models.RoleCustomer, "plumbing")
	require.NoError(t, err)
	assert.Empty(t, none)
}
