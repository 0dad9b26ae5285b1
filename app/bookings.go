package app

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

type BookingInput struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PackageID    string `json:"packageId"`
	BookingDate  string `json:"bookingDate"`
	Notes        string `json:"notes"`
}

type BookingService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db, now: time.Now}
}

// parseBookingDate accepts a calendar date or an RFC 3339 timestamp.
func parseBookingDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Create validates in and books the referenced active package at its
// current price.
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*models.Booking, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if in.CustomerName == "" || in.Email == "" || in.Phone == "" || in.PackageID == "" || in.BookingDate == "" {
		return nil, validationError("Semua field wajib harus diisi")
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, validationError("Format email tidak valid")
	}
	if !phonePattern.MatchString(in.Phone) {
		return nil, validationError("Format nomor telepon tidak valid")
	}
	date, err := parseBookingDate(in.BookingDate)
	if err != nil {
		return nil, validationError("Format tanggal tidak valid")
	}

	var pkg models.TourPackage
	err = s.db.WithContext(ctx).Where("id = ? AND is_active = ?", in.PackageID, true).First(&pkg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("Paket wisata tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}

	if date.Before(startOfDay(s.now())) {
		return nil, validationError("Tanggal booking tidak boleh di masa lalu")
	}

	booking := models.Booking{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		PackageID:    pkg.ID,
		BookingDate:  date,
		TotalPrice:   pkg.Price,
		Status:       models.BookingPending,
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		booking.Notes = &notes
	}

	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, err
	}
	booking.Package = &pkg
	return &booking, nil
}

// List returns all bookings with their package, newest first.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).Preload("Package").Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) Recent(ctx context.Context, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).Preload("Package").Order("created_at DESC").Limit(limit).Find(&bookings).Error
	return bookings, err
}

var bookingStatuses = map[string]bool{
	models.BookingPending:   true,
	models.BookingConfirmed: true,
	models.BookingCancelled: true,
	models.BookingCompleted: true,
}

func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !bookingStatuses[status] {
		return nil, validationError("Invalid booking status %q", status)
	}
	res := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, notFoundError("Booking not found")
	}

	var booking models.Booking
	if err := s.db.WithContext(ctx).Preload("Package").Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).Count(&n).Error
	return n, err
}

func (s *BookingService) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (s *BookingService) CountForPackage(ctx context.Context, packageID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).Where("package_id = ?", packageID).Count(&n).Error
	return n, err
}

// ConfirmedRevenue sums totalPrice over confirmed bookings.
func (s *BookingService) ConfirmedRevenue(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ?", models.BookingConfirmed).
		Select("COALESCE(SUM(total_price), 0)").
		Row().Scan(&total)
	return total, err
}
