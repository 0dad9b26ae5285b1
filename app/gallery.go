package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

const DefaultMaxUploadSize = 5 * 1024 * 1024

var GalleryCategories = map[string]bool{
	"general":       true,
	"rawa-pening":   true,
	"perahu-mesin":  true,
	"kampoeng-rawa": true,
	"lucky-land":    true,
}

// uploadTypes maps accepted sniffed content types to file extensions.
var uploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type GalleryUpload struct {
	Title       string
	Description string
	Category    string
	Size        int64
	Body        io.Reader
}

type GalleryListing struct {
	Items      []models.GalleryItem   `json:"items"`
	Categories []models.CategoryCount `json:"categories"`
	Total      int                    `json:"total"`
}

type GalleryService struct {
	db      *gorm.DB
	storage UploadStorage
	maxSize int64
}

func NewGalleryService(db *gorm.DB, storage UploadStorage, maxSize int64) *GalleryService {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	return &GalleryService{db: db, storage: storage, maxSize: maxSize}
}

func (s *GalleryService) MaxSize() int64 {
	return s.maxSize
}

// List returns active items, newest first. An empty category or "all"
// disables the filter; limit <= 0 means no limit.
func (s *GalleryService) List(ctx context.Context, category string, limit int) (*GalleryListing, error) {
	q := s.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	q = q.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	items := []models.GalleryItem{}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}

	categories := []models.CategoryCount{}
	err := s.db.WithContext(ctx).Model(&models.GalleryItem{}).
		Select("category AS name, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category").
		Order("category").
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	return &GalleryListing{Items: items, Categories: categories, Total: len(items)}, nil
}

func (s *GalleryService) Featured(ctx context.Context, limit int) ([]models.GalleryItem, error) {
	listing, err := s.List(ctx, "", limit)
	if err != nil {
		return nil, err
	}
	return listing.Items, nil
}

func (s *GalleryService) ByCategory(ctx context.Context, category string, limit int) ([]models.GalleryItem, error) {
	listing, err := s.List(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	return listing.Items, nil
}

func (s *GalleryService) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.GalleryItem{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// Upload checks the image, stores it through the upload storage and records
// a gallery item pointing at it.
func (s *GalleryService) Upload(ctx context.Context, up GalleryUpload) (*models.GalleryItem, error) {
	up.Title = strings.TrimSpace(up.Title)
	if up.Category == "" {
		up.Category = "general"
	}
	if up.Body == nil {
		return nil, validationError("No file uploaded")
	}
	if up.Title == "" {
		return nil, validationError("Title is required")
	}
	if !GalleryCategories[up.Category] {
		return nil, validationError("Invalid category %q", up.Category)
	}
	if up.Size > s.maxSize {
		return nil, validationError("File size too large. Maximum size is %dMB", s.maxSize/(1024*1024))
	}

	// Read first 512 bytes to detect MIME type
	head := make([]byte, 512)
	n, err := io.ReadFull(up.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:n]
	mimeType := http.DetectContentType(head)
	ext, ok := uploadTypes[mimeType]
	if !ok {
		return nil, validationError("Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed")
	}

	body := io.MultiReader(bytes.NewReader(head), io.LimitReader(up.Body, s.maxSize-int64(n)+1))
	name := uuid.NewString() + ext
	url, err := s.storage.Save(ctx, name, body, up.Size, mimeType)
	if err != nil {
		return nil, err
	}

	item := models.GalleryItem{
		ID:          uuid.NewString(),
		Title:       up.Title,
		Description: strings.TrimSpace(up.Description),
		ImageURL:    url,
		Category:    up.Category,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		if delErr := s.storage.Delete(ctx, url); delErr != nil {
			log.Printf("Error removing orphaned upload %s: %v", url, delErr)
		}
		return nil, err
	}
	return &item, nil
}

// Delete removes the item and, when the image belongs to the upload storage,
// the stored file. A failure to remove the file does not keep the row.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	var item models.GalleryItem
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError("Gallery item not found")
	}
	if err != nil {
		return err
	}

	if s.storage.Owns(item.ImageURL) {
		if err := s.storage.Delete(ctx, item.ImageURL); err != nil {
			log.Printf("Error deleting file %s: %v", item.ImageURL, err)
		}
	}

	return s.db.WithContext(ctx).Where("id = ?", item.ID).Delete(&models.GalleryItem{}).Error
}
