package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("parse payee", ErrInvalidPublicKey, "bad checksum"), KindValidation},
		{"lookup", Lookup("resolve nonce", ErrAccountLookup, errors.New("404")), KindLookup},
		{"signing", Signing("sign", "key mismatch"), KindSigning},
		{"submission", Submission("submit", errors.New("timeout")), KindSubmission},
		{"wrapped", fmt.Errorf("burn: %w", Submission("submit", errors.New("x"))), KindSubmission},
		{"plain", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("burn: %w", Lookup("resolve fee", ErrFeeSchedule, errors.New("connection refused")))

	assert.True(t, errors.Is(err, ErrFeeSchedule))
	assert.False(t, errors.Is(err, ErrAccountLookup))
	assert.Contains(t, err.Error(), "resolve fee")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationWithoutDetail(t *testing.T) {
	err := Validation("check amount", ErrZeroAmount, "")

	assert.Equal(t, "check amount: zero amount not permitted", err.Error())
	assert.True(t, errors.Is(err, ErrZeroAmount))
}

func TestCauseSurvivesWrapping(t *testing.T) {
	cause := errors.New("connection refused")

	lookup := fmt.Errorf("burn: %w", Lookup("resolve nonce", ErrAccountLookup, cause))
	assert.ErrorIs(t, lookup, ErrAccountLookup)
	assert.ErrorIs(t, lookup, cause)

	submit := Submission("submit burn", cause)
	assert.ErrorIs(t, submit, ErrSubmission)
	assert.ErrorIs(t, submit, cause)
	assert.Equal(t, "submit burn: submission failed: connection refused", submit.Error())
}
