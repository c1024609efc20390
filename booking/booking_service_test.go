package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tidyhive/home-cleaning-backend/auth"
	bk "github.com/tidyhive/home-cleaning-backend/booking"
	bk_mocks "github.com/tidyhive/home-cleaning-backend/booking/mocks"
	"github.com/tidyhive/home-cleaning-backend/catalog"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo    *bk_mocks.MockBookingRepository
	catalog *bk_mocks.MockServiceCatalog
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	cat := bk_mocks.NewMockServiceCatalog(ctrl)
	svc := bk.NewService(repo, cat)

	return ctrl, testDeps{
		repo: repo, catalog: cat, service: svc, ctx: context.Background(),
	}
}

var cleanerService = catalog.Service{
	ID:           7,
	CleanerID:    "cleaner1",
	CategoryID:   1,
	CategoryName: "Deep Cleaning",
	Name:         "Full apartment deep clean",
	IsActive:     true,
}

func validCreateRequest() bk.CreateBookingRequest {
	return bk.CreateBookingRequest{
		CleanerID:       "cleaner1",
		ServiceID:       7,
		BookingTime:     time.Now().Add(48 * time.Hour),
		DurationMinutes: 120,
		PriceAtBooking:  89.50,
		Notes:           "please bring eco-friendly products",
	}
}

func TestCreateBooking(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := validCreateRequest()
		toInsert := bk.Booking{
			HomeOwnerID:     owner.ID,
			CleanerID:       req.CleanerID,
			ServiceID:       req.ServiceID,
			BookingTime:     req.BookingTime,
			DurationMinutes: req.DurationMinutes,
			PriceAtBooking:  req.PriceAtBooking,
			Notes:           req.Notes,
		}
		inserted := toInsert
		inserted.ID = "b-1"
		inserted.Status = bk.StatusPending
		inserted.PaymentStatus = bk.PaymentPending

		deps.catalog.EXPECT().GetService(deps.ctx, int64(7)).Return(cleanerService, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, toInsert).Return(inserted, nil).Times(1)

		created, err := deps.service.CreateBooking(deps.ctx, owner, req)

		require.Nil(t, err)
		require.Equal(t, inserted, created)
	})

	t.Run("booking time not in the future", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := validCreateRequest()
		req.BookingTime = time.Now().Add(-time.Minute)

		deps.catalog.EXPECT().GetService(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, owner, req)

		require.ErrorIs(t, err, bk.ErrValidation)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := validCreateRequest()
		req.DurationMinutes = 0

		_, err := deps.service.CreateBooking(deps.ctx, owner, req)

		require.ErrorIs(t, err, bk.ErrValidation)
	})

	t.Run("non-positive price", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := validCreateRequest()
		req.PriceAtBooking = 0

		_, err := deps.service.CreateBooking(deps.ctx, owner, req)

		require.ErrorIs(t, err, bk.ErrValidation)
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().GetService(deps.ctx, int64(7)).Return(catalog.Service{}, catalog.ErrServiceNotFound).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, owner, validCreateRequest())

		require.ErrorIs(t, err, catalog.ErrServiceNotFound)
	})

	t.Run("service belongs to another cleaner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		otherService := cleanerService
		otherService.CleanerID = "cleaner2"

		deps.catalog.EXPECT().GetService(deps.ctx, int64(7)).Return(otherService, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, owner, validCreateRequest())

		require.ErrorIs(t, err, bk.ErrValidation)
	})

	t.Run("cleaner cannot create bookings", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateBooking(deps.ctx, cleaner, validCreateRequest())

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().GetService(deps.ctx, int64(7)).Return(cleanerService, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).Return(bk.Booking{}, errors.New("repo error")).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, owner, validCreateRequest())

		require.Error(t, err)
	})
}

func TestFindBookingByID(t *testing.T) {

	t.Run("parties may read", func(t *testing.T) {
		for _, actor := range []auth.Identity{owner, cleaner} {
			ctrl, deps := newTestDeps(t)

			b := bookingWith(bk.StatusConfirmed, bk.PaymentPending)
			deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(b, nil).Times(1)

			got, err := deps.service.FindBookingByID(deps.ctx, "b-1", actor)

			require.Nil(t, err)
			require.Equal(t, b, got)
			ctrl.Finish()
		}
	})

	t.Run("third parties may not", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(bookingWith(bk.StatusConfirmed, bk.PaymentPending), nil).Times(1)

		_, err := deps.service.FindBookingByID(deps.ctx, "b-1", stranger)

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "missing").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.FindBookingByID(deps.ctx, "missing", owner)

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestFindBookingsForUser(t *testing.T) {

	t.Run("lists by party side", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		summaries := []bk.BookingSummary{{
			Booking:         bookingWith(bk.StatusPending, bk.PaymentPending),
			OpposingUser:    bk.OpposingUser{ID: cleaner.ID, Name: cleaner.Name},
			ServiceName:     cleanerService.Name,
			ServiceCategory: cleanerService.CategoryName,
		}}

		deps.repo.EXPECT().GetBookingsForParty(deps.ctx, owner.ID, auth.RoleHomeOwner).Return(summaries, nil).Times(1)

		got, err := deps.service.FindBookingsForUser(deps.ctx, owner)

		require.Nil(t, err)
		require.Equal(t, summaries, got)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingsForParty(deps.ctx, cleaner.ID, auth.RoleCleaner).Return(nil, errors.New("repo error")).Times(1)

		_, err := deps.service.FindBookingsForUser(deps.ctx, cleaner)

		require.Error(t, err)
	})
}

func TestRequestTransition(t *testing.T) {

	t.Run("cleaner confirms pending booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bookingWith(bk.StatusPending, bk.PaymentPending)
		updated := b
		updated.Status = bk.StatusConfirmed

		expectedUpdate := bk.StateUpdate{
			ExpectedStatus: statusPtr(bk.StatusPending),
			NewStatus:      statusPtr(bk.StatusConfirmed),
		}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(b, nil).Times(1)
		deps.repo.EXPECT().UpdateBookingState(deps.ctx, "b-1", expectedUpdate).Return(updated, nil).Times(1)

		got, err := deps.service.RequestTransition(deps.ctx, "b-1", cleaner, bk.Change{Status: statusPtr(bk.StatusConfirmed)})

		require.Nil(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("owner marks payment paid without touching status", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bookingWith(bk.StatusConfirmed, bk.PaymentPending)
		updated := b
		updated.PaymentStatus = bk.PaymentPaid

		expectedUpdate := bk.StateUpdate{
			ExpectedPaymentStatus: paymentPtr(bk.PaymentPending),
			NewPaymentStatus:      paymentPtr(bk.PaymentPaid),
		}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(b, nil).Times(1)
		deps.repo.EXPECT().UpdateBookingState(deps.ctx, "b-1", expectedUpdate).Return(updated, nil).Times(1)

		got, err := deps.service.RequestTransition(deps.ctx, "b-1", owner, bk.Change{PaymentStatus: paymentPtr(bk.PaymentPaid)})

		require.Nil(t, err)
		require.Equal(t, bk.PaymentPaid, got.PaymentStatus)
	})

	t.Run("combined status and payment change", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bookingWith(bk.StatusConfirmed, bk.PaymentPaid)
		updated := b
		updated.Status = bk.StatusCancelledByOwner
		updated.PaymentStatus = bk.PaymentRefunded

		expectedUpdate := bk.StateUpdate{
			ExpectedStatus:        statusPtr(bk.StatusConfirmed),
			NewStatus:             statusPtr(bk.StatusCancelledByOwner),
			ExpectedPaymentStatus: paymentPtr(bk.PaymentPaid),
			NewPaymentStatus:      paymentPtr(bk.PaymentRefunded),
		}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(b, nil).Times(1)
		deps.repo.EXPECT().UpdateBookingState(deps.ctx, "b-1", expectedUpdate).Return(updated, nil).Times(1)

		got, err := deps.service.RequestTransition(deps.ctx, "b-1", owner, bk.Change{
			Status:        statusPtr(bk.StatusCancelledByOwner),
			PaymentStatus: paymentPtr(bk.PaymentRefunded),
		})

		require.Nil(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("same status alone is rejected without a write", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(bookingWith(bk.StatusConfirmed, bk.PaymentPending), nil).Times(1)
		deps.repo.EXPECT().UpdateBookingState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RequestTransition(deps.ctx, "b-1", cleaner, bk.Change{Status: statusPtr(bk.StatusConfirmed)})

		require.ErrorIs(t, err, bk.ErrNoValidUpdate)
	})

	t.Run("same status with a legal payment change writes payment only", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bookingWith(bk.StatusConfirmed, bk.PaymentPending)
		updated := b
		updated.PaymentStatus = bk.PaymentPaid

		expectedUpdate := bk.StateUpdate{
			ExpectedPaymentStatus: paymentPtr(bk.PaymentPending),
			NewPaymentStatus:      paymentPtr(bk.PaymentPaid),
		}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(b, nil).Times(1)
		deps.repo.EXPECT().UpdateBookingState(deps.ctx, "b-1", expectedUpdate).Return(updated, nil).Times(1)

		got, err := deps.service.RequestTransition(deps.ctx, "b-1", owner, bk.Change{
			Status:        statusPtr(bk.StatusConfirmed),
			PaymentStatus: paymentPtr(bk.PaymentPaid),
		})

		require.Nil(t, err)
		require.Equal(t, bk.StatusConfirmed, got.Status)
		require.Equal(t, bk.PaymentPaid, got.PaymentStatus)
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "missing").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)
		deps.repo.EXPECT().UpdateBookingState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RequestTransition(deps.ctx, "missing", cleaner, bk.Change{Status: statusPtr(bk.StatusConfirmed)})

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})

	t.Run("third party is rejected", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(bookingWith(bk.StatusPending, bk.PaymentPending), nil).Times(1)
		deps.repo.EXPECT().UpdateBookingState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RequestTransition(deps.ctx, "b-1", stranger, bk.Change{Status: statusPtr(bk.StatusConfirmed)})

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("conflict from a concurrent writer surfaces as-is", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bookingWith(bk.StatusConfirmed, bk.PaymentPending)

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(b, nil).Times(1)
		deps.repo.EXPECT().UpdateBookingState(deps.ctx, "b-1", gomock.Any()).Return(bk.Booking{}, bk.ErrUpdateConflict).Times(1)

		_, err := deps.service.RequestTransition(deps.ctx, "b-1", cleaner, bk.Change{Status: statusPtr(bk.StatusCompleted)})

		require.ErrorIs(t, err, bk.ErrUpdateConflict)
	})
}

// raceBookingStore is an in-memory store with real compare-and-swap
// semantics. Reads are held back until every expected reader has
// observed the same snapshot, which forces the two writers into a
// genuine race on the conditional update.
type raceBookingStore struct {
	mu      sync.Mutex
	booking bk.Booking
	readers sync.WaitGroup
}

func newRaceBookingStore(b bk.Booking, readers int) *raceBookingStore {
	s := &raceBookingStore{booking: b}
	s.readers.Add(readers)
	return s
}

func (s *raceBookingStore) GetBookingByID(ctx context.Context, id string) (bk.Booking, error) {
	s.mu.Lock()
	b := s.booking
	s.mu.Unlock()

	s.readers.Done()
	s.readers.Wait()

	return b, nil
}

func (s *raceBookingStore) UpdateBookingState(ctx context.Context, id string, update bk.StateUpdate) (bk.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.ExpectedStatus != nil && *update.ExpectedStatus != s.booking.Status {
		return bk.Booking{}, bk.ErrUpdateConflict
	}

	if update.ExpectedPaymentStatus != nil && *update.ExpectedPaymentStatus != s.booking.PaymentStatus {
		return bk.Booking{}, bk.ErrUpdateConflict
	}

	if update.NewStatus != nil {
		s.booking.Status = *update.NewStatus
	}

	if update.NewPaymentStatus != nil {
		s.booking.PaymentStatus = *update.NewPaymentStatus
	}

	s.booking.UpdatedAt = time.Now()

	return s.booking, nil
}

func (s *raceBookingStore) GetBookingsForParty(ctx context.Context, userID string, role auth.Role) ([]bk.BookingSummary, error) {
	return nil, nil
}

func (s *raceBookingStore) InsertBooking(ctx context.Context, b bk.Booking) (bk.Booking, error) {
	return b, nil
}

func (s *raceBookingStore) current() bk.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booking
}

func TestRequestTransitionLosesRaceCleanly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newRaceBookingStore(bookingWith(bk.StatusConfirmed, bk.PaymentPending), 2)
	service := bk.NewService(store, bk_mocks.NewMockServiceCatalog(ctrl))

	type attempt struct {
		actor  auth.Identity
		target bk.Status
	}
	attempts := []attempt{
		{cleaner, bk.StatusCompleted},
		{owner, bk.StatusCancelledByOwner},
	}

	errs := make([]error, len(attempts))

	var wg sync.WaitGroup
	for i, a := range attempts {
		i, a := i, a
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = service.RequestTransition(context.Background(), "b-1", a.actor, bk.Change{Status: statusPtr(a.target)})
		}()
	}
	wg.Wait()

	var winners, losers int
	final := store.current().Status

	for i, err := range errs {
		if err == nil {
			winners++
			require.Equal(t, attempts[i].target, final)
			continue
		}

		losers++
		require.ErrorIs(t, err, bk.ErrUpdateConflict)
	}

	require.Equal(t, 1, winners)
	require.Equal(t, 1, losers)
}
