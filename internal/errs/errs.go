// Package errs defines the error kinds raised by the prediction and derating
// engines. Each kind is a concrete type carrying the offending field, and
// each matches a package sentinel through errors.Is.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingKey     = errors.New("missing key")
	ErrOutOfRange     = errors.New("out of range")
	ErrDivisionByZero = errors.New("division by zero")
	ErrTypeMismatch   = errors.New("type mismatch")
)

// MissingKeyError reports a table lookup with no entry for the given key,
// or a required record field that is absent when Key is empty.
type MissingKeyError struct {
	Table string
	Key   string
}

func (e *MissingKeyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("missing key: %s is required", e.Table)
	}
	return fmt.Sprintf("missing key: %s has no entry for %s", e.Table, e.Key)
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// MissingKey builds a MissingKeyError, joining the key parts with "/".
func MissingKey(table string, key ...any) error {
	parts := make([]string, len(key))
	for i, k := range key {
		parts[i] = fmt.Sprint(k)
	}
	return &MissingKeyError{Table: table, Key: strings.Join(parts, "/")}
}

// Required builds a MissingKeyError for an input field with no value.
func Required(field string) error {
	return &MissingKeyError{Table: field}
}

// OutOfRangeError reports a value outside its permitted closed range.
type OutOfRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: %s = %g, want [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// OutOfRange builds an OutOfRangeError.
func OutOfRange(field string, value, min, max float64) error {
	return &OutOfRangeError{Field: field, Value: value, Min: min, Max: max}
}

// DivisionByZeroError names the quantity that was zero.
type DivisionByZeroError struct {
	Quantity string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %s is zero", e.Quantity)
}

func (e *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

// DivisionByZero builds a DivisionByZeroError.
func DivisionByZero(quantity string) error {
	return &DivisionByZeroError{Quantity: quantity}
}

// TypeMismatchError reports a record field holding a value of the wrong kind.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s is %s, want %s", e.Field, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// TypeMismatch builds a TypeMismatchError from the offending value.
func TypeMismatch(field, want string, got any) error {
	return &TypeMismatchError{Field: field, Want: want, Got: fmt.Sprintf("%T", got)}
}

// Field returns the field, table or quantity an engine error refers to, or
// "" when err carries none.
func Field(err error) string {
	var mk *MissingKeyError
	var oor *OutOfRangeError
	var dz *DivisionByZeroError
	var tm *TypeMismatchError
	switch {
	case errors.As(err, &oor):
		return oor.Field
	case errors.As(err, &tm):
		return tm.Field
	case errors.As(err, &dz):
		return dz.Quantity
	case errors.As(err, &mk):
		return mk.Table
	}
	return ""
}
