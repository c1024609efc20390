package booking

import (
	"context"
	"time"

	"github.com/tidyhive/home-cleaning-backend/auth"
	"github.com/tidyhive/home-cleaning-backend/catalog"
)

type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsForParty(ctx context.Context, userID string, role auth.Role) ([]BookingSummary, error)
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	UpdateBookingState(ctx context.Context, id string, update StateUpdate) (Booking, error)
}

type ServiceCatalog interface {
	GetService(ctx context.Context, id int64) (catalog.Service, error)
}

type Service struct {
	repo    BookingRepository
	catalog ServiceCatalog
}

func NewService(repo BookingRepository, catalog ServiceCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

type CreateBookingRequest struct {
	CleanerID       string
	ServiceID       int64
	BookingTime     time.Time
	DurationMinutes int
	PriceAtBooking  float64
	Notes           string
}

func (s *Service) FindBookingsForUser(ctx context.Context, actor auth.Identity) ([]BookingSummary, error) {
	return s.repo.GetBookingsForParty(ctx, actor.ID, actor.Role)
}

func (s *Service) FindBookingByID(ctx context.Context, id string, actor auth.Identity) (Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if actor.ID != b.HomeOwnerID && actor.ID != b.CleanerID {
		return Booking{}, ErrNotAllowed
	}

	return b, nil
}

// CreateBooking validates the request, checks the cleaner/service
// pairing against the catalog and persists the booking in its initial
// PENDING/PENDING state. The price is captured as a snapshot; later
// catalog changes never touch existing bookings.
func (s *Service) CreateBooking(ctx context.Context, actor auth.Identity, req CreateBookingRequest) (Booking, error) {
	if actor.Role != auth.RoleHomeOwner {
		return Booking{}, ErrNotAllowed
	}

	if !req.BookingTime.After(time.Now()) {
		return Booking{}, newValidationError("bookingTime must be in the future")
	}

	if req.DurationMinutes <= 0 {
		return Booking{}, newValidationError("durationMinutes must be positive")
	}

	if req.PriceAtBooking <= 0 {
		return Booking{}, newValidationError("priceAtBooking must be positive")
	}

	svc, err := s.catalog.GetService(ctx, req.ServiceID)

	if err != nil {
		return Booking{}, err
	}

	if svc.CleanerID != req.CleanerID {
		return Booking{}, newValidationError("service %v does not belong to cleaner %v", req.ServiceID, req.CleanerID)
	}

	return s.repo.InsertBooking(ctx, Booking{
		HomeOwnerID:     actor.ID,
		CleanerID:       req.CleanerID,
		ServiceID:       req.ServiceID,
		BookingTime:     req.BookingTime,
		DurationMinutes: req.DurationMinutes,
		PriceAtBooking:  req.PriceAtBooking,
		Notes:           req.Notes,
	})
}

// RequestTransition loads the booking, runs the lifecycle engine over
// the requested changes and applies the approved plan with a
// conditional write keyed on the state that was read. A concurrent
// writer on the same field surfaces as ErrUpdateConflict; the caller
// must reload and re-derive its decision from fresh state.
func (s *Service) RequestTransition(ctx context.Context, id string, actor auth.Identity, req Change) (Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	plan, err := PlanChange(b, actor, req)

	if err != nil {
		return Booking{}, err
	}

	update := StateUpdate{}

	if plan.Status != nil {
		observed := b.Status
		update.ExpectedStatus = &observed
		update.NewStatus = plan.Status
	}

	if plan.PaymentStatus != nil {
		observed := b.PaymentStatus
		update.ExpectedPaymentStatus = &observed
		update.NewPaymentStatus = plan.PaymentStatus
	}

	return s.repo.UpdateBookingState(ctx, b.ID, update)
}
