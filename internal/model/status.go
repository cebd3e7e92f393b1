package model

// OrderStatus is the upstream order state. The flow is strictly linear and
// advanced one step at a time; cancellation is only possible while pending.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusPaid      OrderStatus = "paid"
	StatusCancelled OrderStatus = "cancelled"
)

// transitions is the exhaustive single-step table. Terminal states (paid,
// cancelled) have no entry, so advancing from them is rejected rather than
// relying on index-bounds arithmetic.
var transitions = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCompleted,
	StatusCompleted: StatusPaid,
}

// Next returns the only legal next status, or false from a terminal or
// unknown state.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := transitions[s]
	return next, ok
}

// Terminal reports whether no further transition is offered.
func (s OrderStatus) Terminal() bool {
	_, ok := transitions[s]
	return !ok
}

// Cancellable reports whether the order may move to cancelled. Once the
// kitchen has confirmed, no back-transition is ever offered.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending
}

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusCompleted, StatusPaid, StatusCancelled:
		return true
	}
	return false
}
