package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsMatchThroughWrapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"missing key", MissingKey("resistor part count", 99), ErrMissingKey},
		{"out of range", OutOfRange("environment_active_id", 15, 1, 14), ErrOutOfRange},
		{"division by zero", DivisionByZero("rated current"), ErrDivisionByZero},
		{"type mismatch", TypeMismatch("quality_id", "integer", "high"), ErrTypeMismatch},
	}

	for _, tc := range cases {
		wrapped := fmt.Errorf("component R1: %w", tc.err)
		if !errors.Is(wrapped, tc.sentinel) {
			t.Errorf("%s: errors.Is(%v) = false", tc.name, wrapped)
		}
		for _, other := range []error{ErrMissingKey, ErrOutOfRange, ErrDivisionByZero, ErrTypeMismatch} {
			if other != tc.sentinel && errors.Is(wrapped, other) {
				t.Errorf("%s: unexpectedly matched %v", tc.name, other)
			}
		}
	}
}

func TestMissingKeyJoinsParts(t *testing.T) {
	err := MissingKey("integrated circuit part count", 2, 1, 7)
	var mk *MissingKeyError
	if !errors.As(err, &mk) {
		t.Fatal("expected *MissingKeyError")
	}
	if mk.Key != "2/1/7" {
		t.Errorf("Key = %q, want %q", mk.Key, "2/1/7")
	}
}

func TestFieldNamesOffendingQuantity(t *testing.T) {
	if got := Field(fmt.Errorf("x: %w", DivisionByZero("rated voltage"))); got != "rated voltage" {
		t.Errorf("Field = %q, want %q", got, "rated voltage")
	}
	if got := Field(OutOfRange("environment_active_id", 0, 1, 14)); got != "environment_active_id" {
		t.Errorf("Field = %q", got)
	}
	if got := Field(TypeMismatch("resistance", "number", true)); got != "resistance" {
		t.Errorf("Field = %q", got)
	}
	if got := Field(errors.New("plain")); got != "" {
		t.Errorf("Field = %q, want empty", got)
	}
}

func TestTypeMismatchReportsGoType(t *testing.T) {
	err := TypeMismatch("resistance", "number", "3300")
	if err.Error() != "type mismatch: resistance is string, want number" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRequiredNamesField(t *testing.T) {
	err := fmt.Errorf("component R9: %w", Required("resistance"))
	if !errors.Is(err, ErrMissingKey) {
		t.Fatalf("errors.Is(%v, ErrMissingKey) = false", err)
	}
	if got := Field(err); got != "resistance" {
		t.Errorf("Field = %q, want resistance", got)
	}
	if got := Required("resistance").Error(); got != "missing key: resistance is required" {
		t.Errorf("Error() = %q", got)
	}
}
