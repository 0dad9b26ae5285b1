package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzsnyn/bejalen/models"
)

func newTestBookingService(t *testing.T) (*BookingService, *models.TourPackage) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewBookingService(db)
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local) }
	return svc, insertTestPackage(t, db, "Paket Perahu Mesin", 100000, true)
}

func TestBookingService_Create(t *testing.T) {
	svc, pkg := newTestBookingService(t)

	b, err := svc.Create(bg, BookingInput{
		CustomerName: " Budi ",
		Email:        "Budi@Example.com",
		Phone:        "+62 812-3456",
		PackageID:    pkg.ID,
		BookingDate:  "2025-06-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi", b.CustomerName)
	assert.Equal(t, "budi@example.com", b.Email)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.EqualValues(t, 100000, b.TotalPrice)
	assert.Nil(t, b.Notes)
	require.NotNil(t, b.Package)
	assert.Equal(t, pkg.Name, b.Package.Name)
}

func TestBookingService_CreateValidation(t *testing.T) {
	svc, pkg := newTestBookingService(t)
	valid := BookingInput{
		CustomerName: "Budi",
		Email:        "budi@example.com",
		Phone:        "08123456",
		PackageID:    pkg.ID,
		BookingDate:  "2025-07-01",
	}

	tests := []struct {
		name    string
		mutate  func(in *BookingInput)
		wantErr error
		msg     string
	}{
		{"missing name", func(in *BookingInput) { in.CustomerName = "" }, ErrValidation, "Semua field wajib harus diisi"},
		{"bad email", func(in *BookingInput) { in.Email = "budi" }, ErrValidation, "Format email tidak valid"},
		{"bad phone", func(in *BookingInput) { in.Phone = "call me" }, ErrValidation, "Format nomor telepon tidak valid"},
		{"bad date", func(in *BookingInput) { in.BookingDate = "besok" }, ErrValidation, "Format tanggal tidak valid"},
		{"past date", func(in *BookingInput) { in.BookingDate = "2025-06-09" }, ErrValidation, "Tanggal booking tidak boleh di masa lalu"},
		{"unknown package", func(in *BookingInput) { in.PackageID = "missing" }, ErrNotFound, "Paket wisata tidak ditemukan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := svc.Create(bg, in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.msg, ErrorMessage(err))
		})
	}
}

func TestBookingService_StatusAndRevenue(t *testing.T) {
	svc, pkg := newTestBookingService(t)

	var ids []string
	for _, name := range []string{"Ani", "Budi", "Citra"} {
		b, err := svc.Create(bg, BookingInput{
			CustomerName: name,
			Email:        "x@example.com",
			Phone:        "0812",
			PackageID:    pkg.ID,
			BookingDate:  "2025-07-01T09:00:00+07:00",
			Notes:        "rombongan",
		})
		require.NoError(t, err)
		require.NotNil(t, b.Notes)
		ids = append(ids, b.ID)
	}

	_, err := svc.UpdateStatus(bg, ids[0], models.BookingConfirmed)
	require.NoError(t, err)
	b, err := svc.UpdateStatus(bg, ids[1], models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	require.NotNil(t, b.Package)

	_, err = svc.UpdateStatus(bg, ids[2], "lost")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.UpdateStatus(bg, "missing", models.BookingCancelled)
	assert.ErrorIs(t, err, ErrNotFound)

	revenue, err := svc.ConfirmedRevenue(bg)
	require.NoError(t, err)
	assert.EqualValues(t, 200000, revenue)

	pending, err := svc.CountByStatus(bg, models.BookingPending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending)

	n, err := svc.CountForPackage(bg, pkg.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	recent, err := svc.Recent(bg, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestBookingService_EmptyRevenue(t *testing.T) {
	svc, _ := newTestBookingService(t)

	revenue, err := svc.ConfirmedRevenue(bg)
	require.NoError(t, err)
	assert.Zero(t, revenue)
}
