package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"role forbidden", ErrRoleForbidden},
		{"not owner", ErrNotOwner},
		{"invalid order id", ErrInvalidOrderID},
		{"invalid status", ErrInvalidStatus},
		{"validation", ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	if stdErrors.Is(ErrRoleForbidden, ErrNotOwner) {
		t.Fatal("forbidden and not-owned must stay distinguishable")
	}
	if stdErrors.Is(ErrNotFound, ErrNotOwner) {
		t.Fatal("not-found and not-owned must stay distinguishable")
	}
}
