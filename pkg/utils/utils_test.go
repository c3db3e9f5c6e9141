package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidName(t *testing.T) {
	u := New()

	assert.True(t, u.IsValidName("John Smith"))
	assert.True(t, u.IsValidName("O'Brien"))
	assert.True(t, u.IsValidName("Anne-Marie"))
	assert.False(t, u.IsValidName("12345"))
	assert.False(t, u.IsValidName("x"))
	assert.False(t, u.IsValidName("Honda"))
	assert.False(t, u.IsValidName("battery"))
	assert.False(t, u.IsValidName(""))
}

func TestIsValidPhone(t *testing.T) {
	u := New()

	assert.True(t, u.IsValidPhone("5551234567"))
	assert.True(t, u.IsValidPhone("+15551234567"))
	assert.True(t, u.IsValidPhone("555-123-4567"))
	assert.False(t, u.IsValidPhone("12345"))
	assert.False(t, u.IsValidPhone("call me maybe"))
}

func TestIsValidEmail(t *testing.T) {
	u := New()

	assert.True(t, u.IsValidEmail("jane@example.com"))
	assert.False(t, u.IsValidEmail("jane@example"))
	assert.False(t, u.IsValidEmail("not an email"))
}

func TestExtractContactDetails(t *testing.T) {
	u := New()

	details := u.ExtractContactDetails("reach me at 555-123-4567 or jane@example.com")
	assert.NotEmpty(t, details.Phone)
	assert.Equal(t, "jane@example.com", details.Email)

	details = u.ExtractContactDetails("no contact here")
	assert.Empty(t, details.Phone)
	assert.Empty(t, details.Email)
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	a, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	b, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
