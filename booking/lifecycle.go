package booking

import "github.com/tidyhive/home-cleaning-backend/auth"

// The lifecycle engine is pure: given the current booking, the acting
// user and the requested changes it decides what (if anything) may be
// written. It performs no I/O.

type transition struct {
	from Status
	to   Status
}

// statusTransitions is the complete set of legal status edges and the
// role required to take each one. Anything absent is rejected, which
// makes every terminal status (REJECTED, COMPLETED, both CANCELLED
// variants) terminal by omission. Wiring up IN_PROGRESS later is a data
// change here, not a logic change.
var statusTransitions = map[transition]auth.Role{
	{StatusPending, StatusConfirmed}:            auth.RoleCleaner,
	{StatusPending, StatusRejected}:             auth.RoleCleaner,
	{StatusConfirmed, StatusCompleted}:          auth.RoleCleaner,
	{StatusConfirmed, StatusCancelledByCleaner}: auth.RoleCleaner,
	{StatusConfirmed, StatusCancelledByOwner}:   auth.RoleHomeOwner,
}

// Change is a requested (or planned) update to a booking's two state
// axes. A nil field means "leave it alone".
type Change struct {
	Status        *Status
	PaymentStatus *PaymentStatus
}

func (c Change) IsZero() bool {
	return c.Status == nil && c.PaymentStatus == nil
}

type capabilities struct {
	canChangeStatus  bool
	canChangePayment bool
}

// partyCapabilities maps (booking, actor) to what the actor may touch.
// Only the assigned home owner may change the payment status; both
// assigned parties may request status changes, subject to the
// transition table.
func partyCapabilities(b Booking, actor auth.Identity) capabilities {
	switch {
	case actor.Role == auth.RoleHomeOwner && actor.ID == b.HomeOwnerID:
		return capabilities{canChangeStatus: true, canChangePayment: true}
	case actor.Role == auth.RoleCleaner && actor.ID == b.CleanerID:
		return capabilities{canChangeStatus: true}
	default:
		return capabilities{}
	}
}

// PlanChange validates req against the current booking state and the
// acting user and returns the subset of fields that actually change.
// Requesting a value a field already holds is skipped as a no-op; an
// illegal request on either axis fails the whole plan. A plan with no
// remaining changes fails with ErrNoValidUpdate.
func PlanChange(b Booking, actor auth.Identity, req Change) (Change, error) {
	caps := partyCapabilities(b, actor)

	if !caps.canChangeStatus && !caps.canChangePayment {
		return Change{}, ErrNotAllowed
	}

	var plan Change

	if req.Status != nil && *req.Status != b.Status {
		requiredRole, ok := statusTransitions[transition{from: b.Status, to: *req.Status}]

		if !ok {
			return Change{}, ErrInvalidTransition
		}

		if actor.Role != requiredRole {
			return Change{}, ErrNotAllowed
		}

		plan.Status = req.Status
	}

	if req.PaymentStatus != nil && *req.PaymentStatus != b.PaymentStatus {
		// Any value change is accepted from any prior payment state;
		// the payment axis is gated on role only.
		if !caps.canChangePayment {
			return Change{}, ErrNotAllowed
		}

		plan.PaymentStatus = req.PaymentStatus
	}

	if plan.IsZero() {
		return Change{}, ErrNoValidUpdate
	}

	return plan, nil
}
