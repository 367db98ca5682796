// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"

    "github.com/lib/pq"
)

// ErrCustomerNotFound signals that no customer row matched the given ID
type ErrCustomerNotFound struct {
    CustomerID string
}

func (e *ErrCustomerNotFound) Error() string {
    return fmt.Sprintf("customer with ID %s not found", e.CustomerID)
}

// Helper constructor
func NewCustomerNotFound(id string) error {
    return &ErrCustomerNotFound{CustomerID: id}
}

// ErrAddressNotFound signals that no address row matched the given ID
type ErrAddressNotFound struct {
    AddressID string
}

func (e *ErrAddressNotFound) Error() string {
    return fmt.Sprintf("address with ID %s not found", e.AddressID)
}

func NewAddressNotFound(id string) error {
    return &ErrAddressNotFound{AddressID: id}
}

// ValidationError names a required field that was missing or blank
type ValidationError struct {
    Field string
}

func (e *ValidationError) Error() string {
    return fmt.Sprintf("%s is required", e.Field)
}

func NewValidation(field string) error {
    return &ValidationError{Field: field}
}

// ConstraintViolation wraps an integrity failure reported by the store
// (foreign key, uniqueness, not-null).
type ConstraintViolation struct {
    Constraint string
    Detail     string
}

func (e *ConstraintViolation) Error() string {
    if e.Constraint != "" {
        return fmt.Sprintf("operation violates constraint %s", e.Constraint)
    }
    return "operation violates a data constraint"
}

// Classify maps raw driver errors into the service taxonomy. SQLSTATE class 23
// covers integrity constraint violations; everything else passes through as a
// store failure.
func Classify(err error) error {
    if err == nil {
        return nil
    }
    var pqErr *pq.Error
    if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
        return &ConstraintViolation{Constraint: pqErr.Constraint, Detail: pqErr.Detail}
    }
    return err
}

func IsNotFound(err error) bool {
    var c *ErrCustomerNotFound
    var a *ErrAddressNotFound
    return errors.As(err, &c) || errors.As(err, &a)
}

func IsValidation(err error) bool {
    var v *ValidationError
    return errors.As(err, &v)
}

func IsConstraintViolation(err error) bool {
    var cv *ConstraintViolation
    return errors.As(err, &cv)
}
