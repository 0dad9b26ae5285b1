package app

import (
	"context"

	"github.com/nzsnyn/bejalen/models"
)

const (
	homepagePackages = 3
	homepageGallery  = 6
	generalGallery   = 6
)

type HomepageStats struct {
	TotalPackages int64 `json:"totalPackages"`
	TotalBookings int64 `json:"totalBookings"`
	TotalGallery  int64 `json:"totalGallery"`
}

type Homepage struct {
	Content          models.PageSchema    `json:"content"`
	Version          int                  `json:"version"`
	FeaturedPackages []models.TourPackage `json:"featuredPackages"`
	FeaturedGallery  []models.GalleryItem `json:"featuredGallery"`
	Stats            HomepageStats        `json:"stats"`
}

func (s *Services) Homepage(ctx context.Context) (*Homepage, error) {
	content, err := s.Content.Get(ctx, models.ContentHomepage)
	if err != nil {
		return nil, err
	}
	page := &Homepage{Content: content.Content, Version: content.Version}

	if page.FeaturedPackages, err = s.Packages.Featured(ctx, homepagePackages); err != nil {
		return nil, err
	}
	if page.FeaturedPackages == nil {
		page.FeaturedPackages = []models.TourPackage{}
	}
	if page.FeaturedGallery, err = s.Gallery.Featured(ctx, homepageGallery); err != nil {
		return nil, err
	}
	if page.Stats.TotalPackages, err = s.Packages.CountActive(ctx); err != nil {
		return nil, err
	}
	if page.Stats.TotalBookings, err = s.Bookings.Count(ctx); err != nil {
		return nil, err
	}
	if page.Stats.TotalGallery, err = s.Gallery.CountActive(ctx); err != nil {
		return nil, err
	}
	return page, nil
}

type AttractionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PageInfo struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Features    []string         `json:"features,omitempty"`
	Schedule    []string         `json:"schedule,omitempty"`
	Highlights  []string         `json:"highlights,omitempty"`
	Attractions []AttractionInfo `json:"attractions,omitempty"`
}

// Attraction describes one of the attraction landing pages: which package it
// promotes and which gallery category it shows.
type Attraction struct {
	Slug           string
	Keyword        string
	Category       string
	WithGeneral    bool
	Info           PageInfo
	SuccessMessage string
}

var Attractions = map[string]Attraction{
	"perahu-mesin": {
		Slug:     "perahu-mesin",
		Keyword:  "Perahu",
		Category: "perahu-mesin",
		Info: PageInfo{
			Title:       "Perahu Mesin",
			Description: "Berkeliling Rawa Pening dengan perahu mesin dan menikmati pemandangan",
			Features: []string{
				"Berkeliling Rawa Pening dengan perahu mesin",
				"Pemandangan indah danau dan pegunungan",
				"Spot foto terbaik",
				"Guide lokal berpengalaman",
				"Durasi 4 jam yang menyenangkan",
				"Kapasitas hingga 25 orang",
			},
			Schedule: []string{
				"08:00 - Berkumpul di dermaga",
				"08:30 - Briefing keselamatan",
				"09:00 - Perjalanan dimulai",
				"10:30 - Istirahat di spot foto",
				"11:30 - Melanjutkan perjalanan",
				"12:00 - Kembali ke dermaga",
			},
		},
		SuccessMessage: "Data Perahu Mesin berhasil diambil",
	},
	"rawa-pening": {
		Slug:        "rawa-pening",
		Keyword:     "Rawa Pening",
		Category:    "rawa-pening",
		WithGeneral: true,
		Info: PageInfo{
			Title:       "Rawa Pening",
			Description: "Nikmati keindahan Rawa Pening dengan perahu tradisional dan kuliner lokal",
			Highlights: []string{
				"Danau terbesar di Jawa Tengah",
				"Pemandangan pegunungan yang menakjubkan",
				"Kehidupan flora dan fauna yang beragam",
				"Budaya lokal yang masih terjaga",
				"Kuliner tradisional yang lezat",
			},
			Attractions: []AttractionInfo{
				{Name: "Floating Market", Description: "Pasar terapung dengan kuliner lokal"},
				{Name: "Bird Watching", Description: "Mengamati berbagai jenis burung"},
				{Name: "Sunrise View", Description: "Pemandangan matahari terbit yang memukau"},
				{Name: "Traditional Fishing", Description: "Pengalaman memancing tradisional"},
			},
		},
		SuccessMessage: "Data Rawa Pening berhasil diambil",
	},
	"kampoeng-rawa": {
		Slug:     "kampoeng-rawa",
		Keyword:  "Kampoeng",
		Category: "kampoeng-rawa",
		Info: PageInfo{
			Title:       "Kampoeng Rawa",
			Description: "Pengalaman menginap di rumah tradisional dengan aktivitas budaya",
			Features: []string{
				"Menginap di rumah tradisional",
				"Aktivitas budaya lokal",
				"Kuliner tradisional",
				"Pemandangan Rawa Pening",
				"Interaksi dengan masyarakat lokal",
			},
		},
		SuccessMessage: "Data Kampoeng Rawa berhasil diambil",
	},
}

type AttractionPage struct {
	Package        *models.TourPackage  `json:"package"`
	Gallery        []models.GalleryItem `json:"gallery"`
	GeneralGallery []models.GalleryItem `json:"generalGallery,omitempty"`
	BookingsCount  int64                `json:"bookingsCount"`
	PageInfo       PageInfo             `json:"pageInfo"`
}

func (s *Services) AttractionPage(ctx context.Context, slug string) (*AttractionPage, error) {
	a, ok := Attractions[slug]
	if !ok {
		return nil, notFoundError("unknown attraction %q", slug)
	}

	page := &AttractionPage{PageInfo: a.Info}
	var err error
	if page.Package, err = s.Packages.FindActiveByKeyword(ctx, a.Keyword); err != nil {
		return nil, err
	}
	if page.Gallery, err = s.Gallery.ByCategory(ctx, a.Category, 0); err != nil {
		return nil, err
	}
	if a.WithGeneral {
		if page.GeneralGallery, err = s.Gallery.ByCategory(ctx, "general", generalGallery); err != nil {
			return nil, err
		}
	}
	if page.Package != nil {
		if page.BookingsCount, err = s.Bookings.CountForPackage(ctx, page.Package.ID); err != nil {
			return nil, err
		}
	}
	return page, nil
}
