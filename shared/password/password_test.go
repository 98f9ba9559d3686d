package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guesthouse/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, password.Verify("s3cret-pass", hash))
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := password.Hash("correct-password")
	assert.NoError(t, err)

	// A wrong password must always take the failure branch, however often it is tried.
	for range 3 {
		assert.ErrorIs(t, password.Verify("wrong-password", hash), password.ErrInvalidPassword)
	}
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "some-hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("some-password", ""), password.ErrInvalidPassword)
}
