package app

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFixture struct {
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Role     string `yaml:"role"`
	} `yaml:"admin"`
	Packages []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Price       int64  `yaml:"price"`
		Duration    string `yaml:"duration"`
		Capacity    int    `yaml:"capacity"`
		ImageURL    string `yaml:"image_url"`
	} `yaml:"packages"`
	Gallery []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		ImageURL    string `yaml:"image_url"`
		Category    string `yaml:"category"`
	} `yaml:"gallery"`
}

type SeedResult struct {
	Skipped      bool
	SeededAt     time.Time
	AdminCreated bool
	Packages     int
	GalleryItems int
}

func loadSeedFixture() (*seedFixture, error) {
	var f seedFixture
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	if v := os.Getenv(envPrefix + "_ADMIN_USERNAME"); v != "" {
		f.Admin.Username = v
	}
	if v := os.Getenv(envPrefix + "_ADMIN_PASSWORD"); v != "" {
		f.Admin.Password = v
	}
	return &f, nil
}

// Seed inserts the fixture admin, packages and gallery items that are not
// there yet. Existing rows are left untouched. A database that was seeded
// before is skipped unless force is set.
func Seed(ctx context.Context, db *gorm.DB, force bool) (*SeedResult, error) {
	db = db.WithContext(ctx)

	last, err := getMetadataTime(db, seededAtKey)
	if err != nil {
		return nil, err
	}
	if !last.IsZero() && !force {
		return &SeedResult{Skipped: true, SeededAt: last}, nil
	}

	fixture, err := loadSeedFixture()
	if err != nil {
		return nil, err
	}

	res := &SeedResult{}
	err = db.Transaction(func(tx *gorm.DB) error {
		hash, err := hashPassword(fixture.Admin.Password)
		if err != nil {
			return err
		}
		a := fixture.Admin
		res.AdminCreated, err = insertMissing(tx, &models.Admin{}, "username", a.Username, &models.Admin{
			ID:       uuid.NewString(),
			Username: a.Username,
			Password: hash,
			Email:    a.Email,
			Name:     a.Name,
			Role:     a.Role,
			IsActive: true,
		})
		if err != nil {
			return err
		}

		for _, p := range fixture.Packages {
			created, err := insertMissing(tx, &models.TourPackage{}, "name", p.Name, &models.TourPackage{
				ID:          uuid.NewString(),
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Duration:    p.Duration,
				Capacity:    p.Capacity,
				ImageURL:    p.ImageURL,
				IsActive:    true,
			})
			if err != nil {
				return err
			}
			if created {
				res.Packages++
			}
		}

		for _, g := range fixture.Gallery {
			created, err := insertMissing(tx, &models.GalleryItem{}, "title", g.Title, &models.GalleryItem{
				ID:          uuid.NewString(),
				Title:       g.Title,
				Description: g.Description,
				ImageURL:    g.ImageURL,
				Category:    g.Category,
				IsActive:    true,
			})
			if err != nil {
				return err
			}
			if created {
				res.GalleryItems++
			}
		}

		res.SeededAt = time.Now().UTC()
		return setMetadataTime(tx, seededAtKey, res.SeededAt)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// insertMissing creates row unless a row of model with column = value exists.
func insertMissing(tx *gorm.DB, model any, column, value string, row any) (bool, error) {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", value).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	return true, tx.Create(row).Error
}
