package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the use cases wraps exactly one of them.
var (
	ErrValidation        = errors.New("validation error")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrForbidden         = errors.New("forbidden")
	ErrGateway           = errors.New("payment gateway error")

	// ErrConcurrentModification is returned by guarded writes when the stored
	// status no longer matches the expected one. Callers re-read and retry.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrLatePayment marks an approval that arrived after the order lapsed.
	ErrLatePayment = fmt.Errorf("%w: payment approved after order lapsed", ErrInvalidTransition)
)

// DomainError carries the kind plus enough context to report or retry.
type DomainError struct {
	Kind   error
	Entity string
	ID     string
	Reason string
	Err    error
}

func (e *DomainError) Error() string {
	parts := []string{e.Kind.Error()}
	if e.Entity != "" || e.ID != "" {
		parts = append(parts, strings.TrimSpace(e.Entity+" "+e.ID))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *DomainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewValidationError(reason string) error {
	return &DomainError{Kind: ErrValidation, Reason: reason}
}

func NewNotFoundError(entity, id string) error {
	return &DomainError{Kind: ErrNotFound, Entity: entity, ID: id}
}

func NewInsufficientStockError(stockLineID string, requested int) error {
	return &DomainError{
		Kind:   ErrInsufficientStock,
		Entity: "stock_line",
		ID:     stockLineID,
		Reason: fmt.Sprintf("requested %d", requested),
	}
}

func NewInvalidTransitionError(entity, id string, from, to fmt.Stringer) error {
	return &DomainError{
		Kind:   ErrInvalidTransition,
		Entity: entity,
		ID:     id,
		Reason: fmt.Sprintf("%s -> %s", from, to),
	}
}

func NewForbiddenError(entity, id string) error {
	return &DomainError{Kind: ErrForbidden, Entity: entity, ID: id}
}

func NewGatewayError(operation string, err error) error {
	return &DomainError{Kind: ErrGateway, Reason: operation, Err: err}
}

func NewConcurrentModificationError(entity, id string) error {
	return &DomainError{Kind: ErrConcurrentModification, Entity: entity, ID: id}
}

// DomainErrorOf returns the DomainError wrapped in err, if any.
func DomainErrorOf(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
