package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"guesthouse/shared/failure"
	"guesthouse/shared/validator"
)

type loginPayload struct {
	EmailID  string `json:"emailId"  validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid payload",
			body: `{"emailId":"staff@guesthouse.io","password":"secret"}`,
		},
		{
			name:    "missing password",
			body:    `{"emailId":"staff@guesthouse.io"}`,
			wantErr: true,
		},
		{
			name:    "bad email",
			body:    `{"emailId":"not-an-email","password":"secret"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"emailId":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := loginPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStructRoleOneof(t *testing.T) {
	type signup struct {
		Role string `json:"role" validate:"required,oneof=admin staff"`
	}

	assert.NoError(t, validator.ValidateStruct(&signup{Role: "staff"}))
	assert.NoError(t, validator.ValidateStruct(&signup{Role: "admin"}))

	err := validator.ValidateStruct(&signup{Role: "superuser"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("staff@guesthouse.io", "required,email"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
