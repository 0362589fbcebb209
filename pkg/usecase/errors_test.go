package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/usecase"
)

func TestErrors_SentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrRoundNotFound", usecase.ErrRoundNotFound},
		{"ErrDelegationNotFound", usecase.ErrDelegationNotFound},
		{"ErrDelegateNotFound", usecase.ErrDelegateNotFound},
		{"ErrInvalidImport", usecase.ErrInvalidImport},
		{"ErrInvalidInput", usecase.ErrInvalidInput},
		{"ErrPartialFailure", usecase.ErrPartialFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.err).NotNil()
		})
	}
}

func TestErrors_ErrorsAreDistinct(t *testing.T) {
	gt.Bool(t, errors.Is(usecase.ErrRoundNotFound, usecase.ErrDelegationNotFound)).False()
	gt.Bool(t, errors.Is(usecase.ErrInvalidImport, usecase.ErrInvalidInput)).False()
}
