package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"guesthouse/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: failure.BadRequestFromString("invalid dates entered"), want: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("Unauthorized Access"), want: http.StatusUnauthorized},
		{name: "not found", err: failure.NotFound("staff not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("email already registered"), want: http.StatusConflict},
		{name: "unavailable", err: failure.Unavailable("database unreachable"), want: http.StatusServiceUnavailable},
		{name: "plain error maps to internal", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestGetCodeWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), failure.Conflict("duplicate"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
}

func TestErrorMessage(t *testing.T) {
	err := failure.Unauthorized("Wrong Password, Try again.")

	assert.Equal(t, "Wrong Password, Try again.", err.Error())
}
