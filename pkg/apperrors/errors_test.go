package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("passenger", "pas_12345678")))
	assert.Equal(t, KindValidation, KindOf(Validation("empty payload")))
	assert.Equal(t, KindUnavailable, KindOf(Unavailable("graph store", errors.New("refused"))))
	assert.Equal(t, KindPartialResult, KindOf(Partial("ticket lookup failed", errors.New("timeout"))))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate passport")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("fetching profile: %w", NotFound("passenger", "pas_12345678"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("ledger store", cause)
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsUnavailable(err))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, `NOT_FOUND: passenger "pas_12345678" not found`, NotFound("passenger", "pas_12345678").Error())
	assert.Contains(t, Unavailable("graph store", errors.New("refused")).Error(), "graph store is unavailable")
}
