package app

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

// Services bundles the domain services that share one database.
type Services struct {
	Config   *models.AppConfig
	DB       *gorm.DB
	Walker   *AssetWalker
	Content  *ContentStore
	Packages *PackageService
	Bookings *BookingService
	Contacts *ContactService
	Gallery  *GalleryService
	Auth     *AuthService
}

// NewServices opens the configured database and upload storage.
func NewServices(ctx context.Context, cfg *models.AppConfig) (*Services, error) {
	db, err := OpenDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	storage, err := NewUploadStorage(ctx, cfg)
	if err != nil {
		CloseDB(db)
		return nil, err
	}
	svc, err := NewServicesWith(cfg, db, storage)
	if err != nil {
		CloseDB(db)
		return nil, err
	}
	log.Printf("Gallery uploads use the %s storage engine", storage.Name())
	return svc, nil
}

// NewServicesWith wires the services over an already opened database.
func NewServicesWith(cfg *models.AppConfig, db *gorm.DB, storage UploadStorage) (*Services, error) {
	walker, err := NewAssetWalker(cfg.Assets, NewLogger())
	if err != nil {
		return nil, err
	}
	return &Services{
		Config:   cfg,
		DB:       db,
		Walker:   walker,
		Content:  NewContentStore(db),
		Packages: NewPackageService(db),
		Bookings: NewBookingService(db),
		Contacts: NewContactService(db),
		Gallery:  NewGalleryService(db, storage, cfg.Uploads.MaxSize),
		Auth:     NewAuthService(db),
	}, nil
}

func (s *Services) Close() error {
	return CloseDB(s.DB)
}

// Run prepares the database named in the config: schema and seed data.
func Run(configPath string, forceSeed bool) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	db, err := OpenDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer CloseDB(db)

	res, err := Seed(context.Background(), db, forceSeed)
	if err != nil {
		return err
	}
	if res.Skipped {
		log.Printf("Database already seeded at %s, skipping", res.SeededAt.Format("2006-01-02 15:04:05"))
		return nil
	}

	log.Printf("Database initialized successfully: %d packages, %d gallery items added", res.Packages, res.GalleryItems)
	return nil
}
