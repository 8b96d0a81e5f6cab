package services

import "fmt"

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// AuthorizationError reports that the caller's role or assignment does not
// permit the action.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return e.Reason }

// StateError reports a transition that is illegal from the entity's current
// state, e.g. deciding an already-decided entry.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return e.Reason }

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// InsufficientStockError reports an issue approval that would drive stock
// negative. The request stays pending.
type InsufficientStockError struct {
	MaterialCode string
	Available    int
	Requested    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available, %d requested",
		e.MaterialCode, e.Available, e.Requested)
}
