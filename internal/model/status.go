package model

// TransactionStatus tracks a purchase through settlement.
// Transitions are one-way: pending → completed or pending → failed.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// CanTransitionTo reports whether moving to next is a legal transition.
// Re-applying a terminal state is not legal; callers treat that as a no-op
// rather than an error.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return s == StatusPending && (next == StatusCompleted || next == StatusFailed)
}

// Terminal reports whether no further transition is permitted.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
