package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

// setupTestDB creates a migrated SQLite database in a temp dir.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to open db")
	t.Cleanup(func() { CloseDB(db) })
	return db
}

// setupTestServices wires all services over a temp database and a local
// upload storage rooted in its own temp public dir.
func setupTestServices(t *testing.T) (*Services, string) {
	t.Helper()

	publicDir := t.TempDir()
	cfg := &models.AppConfig{}
	cfg.Server.PublicDir = publicDir
	cfg.Uploads.MaxSize = DefaultMaxUploadSize

	svc, err := NewServicesWith(cfg, setupTestDB(t), NewLocalStorage(publicDir))
	require.NoError(t, err)
	return svc, publicDir
}

func insertTestPackage(t *testing.T, db *gorm.DB, name string, price int64, active bool) *models.TourPackage {
	t.Helper()

	pkg := &models.TourPackage{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		Duration: "1 hari",
		IsActive: active,
	}
	require.NoError(t, db.Create(pkg).Error)
	return pkg
}

func insertTestGalleryItem(t *testing.T, db *gorm.DB, title, category string) *models.GalleryItem {
	t.Helper()

	item := &models.GalleryItem{
		ID:       uuid.NewString(),
		Title:    title,
		ImageURL: "/" + title + ".png",
		Category: category,
		IsActive: true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func ptr[T any](v T) *T {
	return &v
}

var bg = context.Background()
