package statemachine

import (
	"canteen-api/models"
)

// Transition defines a valid move along the preparation pipeline
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition. The
// pipeline is monotonic: preparing → partially_completed → ready_to_serve →
// completed. Forward moves may skip stages (a kitchen can mark a small order
// ready without ever being partially done); backward moves are illegal.
var validTransitions = []Transition{
	{From: models.StatusPreparing, To: models.StatusPartiallyCompleted},
	{From: models.StatusPreparing, To: models.StatusReadyToServe},
	{From: models.StatusPreparing, To: models.StatusCompleted},
	{From: models.StatusPartiallyCompleted, To: models.StatusReadyToServe},
	{From: models.StatusPartiallyCompleted, To: models.StatusCompleted},
	{From: models.StatusReadyToServe, To: models.StatusCompleted},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// ValidOrderStatus reports whether s is one of the four pipeline states.
func ValidOrderStatus(s models.OrderStatus) bool {
	switch s {
	case models.StatusPreparing, models.StatusPartiallyCompleted,
		models.StatusReadyToServe, models.StatusCompleted:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the four billing states.
func ValidPaymentStatus(s models.PaymentStatus) bool {
	switch s {
	case models.PaymentPending, models.PaymentCompleted,
		models.PaymentFailed, models.PaymentRefunded:
		return true
	}
	return false
}

// InvalidTransitionError is returned when a requested status change would
// move the order backward through the pipeline.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return "invalid transition: " + string(e.From) + " -> " + string(e.To) +
		" is not allowed. Valid transitions from " + string(e.From) +
		" are: " + describeValidFrom(e.From)
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another.
// Re-asserting the current state is a no-op the staff screens rely on.
func CanTransition(from, to models.OrderStatus) error {
	if from == to {
		return nil
	}
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return &InvalidTransitionError{From: from, To: to}
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
