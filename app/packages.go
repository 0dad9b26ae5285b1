package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

// PackageInput carries the editable fields of a tour package. Nil fields are
// left untouched on update.
type PackageInput struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"` // admin UI alias of name
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Duration    *string `json:"duration"`
	Capacity    *int    `json:"capacity"`
	ImageURL    *string `json:"imageUrl"`
	Image       *string `json:"image"` // admin UI alias of imageUrl
	IsActive    *bool   `json:"isActive"`
}

func (in PackageInput) name() *string {
	if in.Name != nil {
		return in.Name
	}
	return in.Title
}

func (in PackageInput) imageURL() *string {
	if in.ImageURL != nil {
		return in.ImageURL
	}
	return in.Image
}

type PackageService struct {
	db *gorm.DB
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{db: db}
}

// ListActive returns active packages, cheapest first.
func (s *PackageService) ListActive(ctx context.Context) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("price ASC").Find(&pkgs).Error
	return pkgs, err
}

// ListAll returns every package, newest first.
func (s *PackageService) ListAll(ctx context.Context) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&pkgs).Error
	return pkgs, err
}

// Featured returns the limit newest active packages.
func (s *PackageService) Featured(ctx context.Context, limit int) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").Limit(limit).Find(&pkgs).Error
	return pkgs, err
}

// FindActiveByKeyword returns the first active package whose name contains
// keyword, case-insensitively, or nil.
func (s *PackageService) FindActiveByKeyword(ctx context.Context, keyword string) (*models.TourPackage, error) {
	var pkg models.TourPackage
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND LOWER(name) LIKE ?", true, "%"+strings.ToLower(keyword)+"%").
		Order("created_at ASC").
		First(&pkg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageService) Get(ctx context.Context, id string) (*models.TourPackage, error) {
	var pkg models.TourPackage
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("Package not found")
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageService) Create(ctx context.Context, in PackageInput) (*models.TourPackage, error) {
	name := in.name()
	if name == nil || strings.TrimSpace(*name) == "" || in.Price == nil || in.Duration == nil || strings.TrimSpace(*in.Duration) == "" {
		return nil, validationError("Name, price and duration are required")
	}
	if *in.Price <= 0 {
		return nil, validationError("Price must be greater than zero")
	}

	pkg := models.TourPackage{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(*name),
		Price:    *in.Price,
		Duration: strings.TrimSpace(*in.Duration),
		IsActive: true,
	}
	if in.Description != nil {
		pkg.Description = strings.TrimSpace(*in.Description)
	}
	if in.Capacity != nil {
		pkg.Capacity = *in.Capacity
	}
	if img := in.imageURL(); img != nil {
		pkg.ImageURL = *img
	}
	if in.IsActive != nil {
		pkg.IsActive = *in.IsActive
	}

	if err := s.ensureUniqueName(ctx, pkg.Name, ""); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Update applies the non-nil fields of in. An empty name keeps the stored one.
func (s *PackageService) Update(ctx context.Context, id string, in PackageInput) (*models.TourPackage, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := in.name(); name != nil && strings.TrimSpace(*name) != "" {
		pkg.Name = strings.TrimSpace(*name)
		if err := s.ensureUniqueName(ctx, pkg.Name, pkg.ID); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		pkg.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, validationError("Price must be greater than zero")
		}
		pkg.Price = *in.Price
	}
	if in.Duration != nil {
		pkg.Duration = *in.Duration
	}
	if in.Capacity != nil {
		pkg.Capacity = *in.Capacity
	}
	if img := in.imageURL(); img != nil {
		pkg.ImageURL = *img
	}
	if in.IsActive != nil {
		pkg.IsActive = *in.IsActive
	}

	if err := s.db.WithContext(ctx).Save(pkg).Error; err != nil {
		return nil, err
	}
	return pkg, nil
}

// Delete removes a package that has never been booked. Booked packages are
// kept for the booking history and revenue; deactivate them instead.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("package_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return validationError("Package has %d bookings and cannot be deleted, deactivate it instead", bookings)
		}

		res := tx.Where("id = ?", id).Delete(&models.TourPackage{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFoundError("Package not found")
		}
		return nil
	})
}

func (s *PackageService) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.TourPackage{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (s *PackageService) ensureUniqueName(ctx context.Context, name, exceptID string) error {
	var n int64
	q := s.db.WithContext(ctx).Model(&models.TourPackage{}).Where("name = ?", name)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return validationError("Package %q already exists", name)
	}
	return nil
}
