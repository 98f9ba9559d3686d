package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/internal/domains/staff/model"
	"guesthouse/internal/domains/staff/model/dto"
)

func TestSignupRequestToModel(t *testing.T) {
	req := dto.SignupRequest{
		EmailID:   "jane@example.com",
		Password:  "plaintext-ignored",
		Role:      "staff",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "08123456789",
	}

	staff := req.ToModel("$2a$10$hashedhashedhashedhashed")

	assert.NotEmpty(t, staff.ID)
	assert.Equal(t, "jane@example.com", staff.EmailID)
	assert.Equal(t, "$2a$10$hashedhashedhashedhashed", staff.Password)
	assert.Equal(t, "staff", staff.Role)
	assert.Equal(t, "Jane", staff.FirstName)
	assert.False(t, staff.CreatedAt.IsZero())
	assert.Equal(t, "jane@example.com", staff.CreatedBy)
}

func TestStaffResponseNeverCarriesPassword(t *testing.T) {
	var res dto.StaffResponse
	res.FromModel(model.Staff{
		ID:       "staff-1",
		EmailID:  "jane@example.com",
		Password: "$2a$10$secret",
		Role:     "staff",
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}
