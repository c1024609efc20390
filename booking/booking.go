package booking

import "time"

type Status string

const (
	StatusPending            Status = "PENDING"
	StatusConfirmed          Status = "CONFIRMED"
	StatusRejected           Status = "REJECTED"
	StatusCompleted          Status = "COMPLETED"
	StatusCancelledByOwner   Status = "CANCELLED_BY_OWNER"
	StatusCancelledByCleaner Status = "CANCELLED_BY_CLEANER"
	// StatusInProgress is reserved; no transition targets it yet.
	StatusInProgress Status = "IN_PROGRESS"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Booking struct {
	ID              string        `json:"id"`
	HomeOwnerID     string        `json:"homeOwnerId"`
	CleanerID       string        `json:"cleanerId"`
	ServiceID       int64         `json:"serviceId"`
	BookingTime     time.Time     `json:"bookingTime"`
	DurationMinutes int           `json:"durationMinutes"`
	PriceAtBooking  float64       `json:"priceAtBooking"`
	Notes           string        `json:"notes"`
	Status          Status        `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// OpposingUser is the other party of a booking from the viewpoint of
// whoever asked for the listing.
type OpposingUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingSummary is a booking enriched with the display fields the
// listing endpoint returns alongside the raw record.
type BookingSummary struct {
	Booking
	OpposingUser    OpposingUser `json:"opposingUser"`
	ServiceName     string       `json:"serviceName"`
	ServiceCategory string       `json:"serviceCategory"`
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCompleted,
		StatusCancelledByOwner, StatusCancelledByCleaner, StatusInProgress:
		return Status(s), nil
	}
	return "", newValidationError("unknown booking status %q", s)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", newValidationError("unknown payment status %q", s)
}
