package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidyhive/home-cleaning-backend/auth"
)

// StateUpdate is the conditional-write contract for the two state
// fields. Each new value carries its own expected prior value so the
// write only lands if the field still holds what the caller last read.
// The tokens are independent: a status race does not fail a
// payment-only update and vice versa.
type StateUpdate struct {
	ExpectedStatus        *Status
	NewStatus             *Status
	ExpectedPaymentStatus *PaymentStatus
	NewPaymentStatus      *PaymentStatus
}

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.HomeOwnerID,
		&b.CleanerID,
		&b.ServiceID,
		&b.BookingTime,
		&b.DurationMinutes,
		&b.PriceAtBooking,
		&b.Notes,
		&b.Status,
		&b.PaymentStatus,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `
			SELECT id, home_owner_id, cleaner_id, service_id, booking_time,
				duration_minutes, price_at_booking, COALESCE(notes, ''), status, payment_status,
				created_at, updated_at
			FROM bookings
			WHERE id = $1;
		`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

func (r *Repository) GetBookingsForParty(ctx context.Context, userID string, role auth.Role) ([]BookingSummary, error) {
	filterColumn := "b.home_owner_id"
	opposingColumn := "b.cleaner_id"

	if role == auth.RoleCleaner {
		filterColumn = "b.cleaner_id"
		opposingColumn = "b.home_owner_id"
	}

	sql := fmt.Sprintf(`
			SELECT b.id, b.home_owner_id, b.cleaner_id, b.service_id, b.booking_time,
				b.duration_minutes, b.price_at_booking, COALESCE(b.notes, ''), b.status, b.payment_status,
				b.created_at, b.updated_at,
				u.id, COALESCE(u.name, ''), s.name, sc.name
			FROM bookings b
			JOIN users u ON u.id = %s
			JOIN services s ON s.id = b.service_id
			JOIN service_categories sc ON sc.id = s.category_id
			WHERE %s = $1
			ORDER BY b.booking_time DESC;
		`, opposingColumn, filterColumn)

	rows, err := r.pool.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var summaries []BookingSummary

	for rows.Next() {
		var s BookingSummary
		err := rows.Scan(
			&s.ID,
			&s.HomeOwnerID,
			&s.CleanerID,
			&s.ServiceID,
			&s.BookingTime,
			&s.DurationMinutes,
			&s.PriceAtBooking,
			&s.Notes,
			&s.Status,
			&s.PaymentStatus,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.OpposingUser.ID,
			&s.OpposingUser.Name,
			&s.ServiceName,
			&s.ServiceCategory,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return summaries, nil
}

func (r *Repository) InsertBooking(ctx context.Context, b Booking) (Booking, error) {
	sql := `
			INSERT INTO bookings(
			id, home_owner_id, cleaner_id, service_id, booking_time,
			duration_minutes, price_at_booking, notes, status, payment_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)
			RETURNING id, home_owner_id, cleaner_id, service_id, booking_time,
				duration_minutes, price_at_booking, COALESCE(notes, ''), status, payment_status,
				created_at, updated_at;
		`

	inserted, err := scanBooking(r.pool.QueryRow(ctx, sql,
		uuid.NewString(),
		b.HomeOwnerID,
		b.CleanerID,
		b.ServiceID,
		b.BookingTime,
		b.DurationMinutes,
		b.PriceAtBooking,
		b.Notes,
		StatusPending,
		PaymentPending,
	))

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return inserted, nil
}

// UpdateBookingState applies a conditional update: each state field is
// only written when its expected prior value still matches, all in one
// statement so no lock is held across the read-decide-write sequence.
// A vanished row maps to ErrBookingNotFound, a failed expectation to
// ErrUpdateConflict; nothing is ever partially applied.
func (r *Repository) UpdateBookingState(ctx context.Context, id string, update StateUpdate) (Booking, error) {
	sql := `
			UPDATE bookings
			SET
				status = COALESCE($2::text, status),
				payment_status = COALESCE($3::text, payment_status),
				updated_at = now()
			WHERE id = $1
			AND ($4::text IS NULL OR status = $4)
			AND ($5::text IS NULL OR payment_status = $5)
			RETURNING id, home_owner_id, cleaner_id, service_id, booking_time,
				duration_minutes, price_at_booking, COALESCE(notes, ''), status, payment_status,
				created_at, updated_at;
		`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql,
		id,
		textOrNil(update.NewStatus),
		textOrNil(update.NewPaymentStatus),
		textOrNil(update.ExpectedStatus),
		textOrNil(update.ExpectedPaymentStatus),
	))

	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		checkErr := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1);`, id).Scan(&exists)

		if checkErr != nil {
			return Booking{}, fmt.Errorf("failed to update booking '%v': %w", id, checkErr)
		}

		if exists {
			return Booking{}, ErrUpdateConflict
		}

		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to update booking '%v': %w", id, err)
	}

	return b, nil
}

func textOrNil[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
