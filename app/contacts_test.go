package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzsnyn/bejalen/models"
)

func TestContactService(t *testing.T) {
	svc := NewContactService(setupTestDB(t))

	c, err := svc.Create(bg, ContactInput{
		Name:    "Sari",
		Email:   "SARI@example.com",
		Subject: "Rombongan sekolah",
		Message: "Apakah ada diskon?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactNew, c.Status)
	assert.Equal(t, "sari@example.com", c.Email)
	assert.Nil(t, c.Phone)

	_, err = svc.Create(bg, ContactInput{Name: "Sari", Email: "sari@example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(bg, ContactInput{Name: "Sari", Email: "sari", Subject: "a", Message: "b"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Format email tidak valid", ErrorMessage(err))

	list, err := svc.List(bg)
	require.NoError(t, err)
	require.Len(t, list, 1)

	n, err := svc.Count(bg)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
