package models

import "fmt"

// ValidationError reports a malformed or out-of-range field. For invoice items,
// Index identifies the offending item position.
type ValidationError struct {
	Field string
	Index int
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("validation failed on item %d, field %q: %s", e.Index, e.Field, e.Msg)
	}
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Msg)
}

// InvalidTransitionError signals an illegal invoice status change.
type InvalidTransitionError struct {
	From InvoiceStatus
	To   InvoiceStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// PreconditionError signals that an operation is not permitted in the record's
// current state (e.g. deleting a non-draft invoice).
type PreconditionError struct {
	Msg string
}

func (e PreconditionError) Error() string {
	return e.Msg
}

// DuplicateKeyError signals a unique-constraint violation on a business code or
// invoice number.
type DuplicateKeyError struct {
	Key string
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Key)
}

// NotFoundError signals that a referenced record does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}
