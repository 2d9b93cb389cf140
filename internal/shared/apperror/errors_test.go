package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedErrorsKeepKind(t *testing.T) {
	err := fmt.Errorf("service.staff.Seat: %w", TableOccupied("Requested table unavailable"))

	assert.True(t, errors.Is(err, ErrTableOccupied))
	assert.False(t, errors.Is(err, ErrNoCapacity))

	e := From(err)
	assert.Equal(t, CodeTableOccupied, e.Code)
	assert.Equal(t, "Requested table unavailable", e.Message)
}

func TestFromUnknownError(t *testing.T) {
	e := From(errors.New("boom"))
	assert.Equal(t, KindInternal, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(e.Kind))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("Event", nil), http.StatusNotFound},
		{AlreadyExists("dup"), http.StatusConflict},
		{NoCapacity("full"), http.StatusConflict},
		{TableOccupied("taken"), http.StatusConflict},
		{InvalidInput("bad state"), http.StatusConflict},
		{Validation("bad body", nil), http.StatusBadRequest},
		{Unauthorized("nope"), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err.Kind), tc.err.Code)
	}
}

func TestNotFoundDetails(t *testing.T) {
	e := NotFound("Entry", map[string]any{"eventId": "e1", "entryId": "x"})
	assert.Equal(t, "Entry not found", e.Message)
	assert.Equal(t, "x", e.Details["entryId"])
}
