package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrNotFound,
		ErrValidation,
		ErrUnsupportedCurrency,
		ErrUnavailable,
		ErrFetchFailed,
		ErrLocalDataNotAvailable,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinels_MatchWhenWrapped(t *testing.T) {
	err := fmt.Errorf("list campaigns: %w", ErrFetchFailed)
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("wrapped error lost its sentinel: %v", err)
	}
}
