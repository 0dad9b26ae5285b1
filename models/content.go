package models

import (
	"fmt"
	"sort"
	"strings"
)

const (
	ContentHomepage     = "homepage"
	ContentInfoPaket    = "info-paket"
	ContentPerahuMesin  = "perahu-mesin"
	ContentKampoengRawa = "kampoeng-rawa"
	ContentLuckyLand    = "lucky-land"
	ContentRawaPening   = "rawa-pening"
)

// PageSchema is implemented by every editable content kind.
type PageSchema interface {
	Kind() string
	// Validate returns the names of required fields that are empty.
	Validate() []string
}

type HeroSection struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"backgroundImage"`
}

type AboutSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FeatureSection struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type HeadingSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type HomepageContent struct {
	Hero         HeroSection    `json:"hero"`
	About        AboutSection   `json:"about"`
	RawaPening   FeatureSection `json:"rawaPening"`
	Destinations HeadingSection `json:"destinations"`
}

func (HomepageContent) Kind() string { return ContentHomepage }

func (c HomepageContent) Validate() []string {
	return missing(map[string]string{
		"hero.title":           c.Hero.Title,
		"hero.backgroundImage": c.Hero.BackgroundImage,
		"about.title":          c.About.Title,
		"rawaPening.title":     c.RawaPening.Title,
		"rawaPening.image":     c.RawaPening.Image,
		"destinations.title":   c.Destinations.Title,
	})
}

type InfoPaketContent struct {
	Title      string `json:"title"`
	PromoImage string `json:"promoImage"`
}

func (InfoPaketContent) Kind() string { return ContentInfoPaket }

func (c InfoPaketContent) Validate() []string {
	return missing(map[string]string{
		"title":      c.Title,
		"promoImage": c.PromoImage,
	})
}

type PerahuMesinContent struct {
	Title        string `json:"title"`
	HeaderImage  string `json:"headerImage"`
	Description  string `json:"description"`
	WeekdayPrice string `json:"weekdayPrice"`
	WeekendPrice string `json:"weekendPrice"`
	Capacity     string `json:"capacity"`
	Duration     string `json:"duration"`
}

func (PerahuMesinContent) Kind() string { return ContentPerahuMesin }

func (c PerahuMesinContent) Validate() []string {
	return missing(map[string]string{
		"title":        c.Title,
		"headerImage":  c.HeaderImage,
		"description":  c.Description,
		"weekdayPrice": c.WeekdayPrice,
		"weekendPrice": c.WeekendPrice,
	})
}

type Attraction struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type KampoengRawaContent struct {
	Title        string       `json:"title"`
	HeaderImage  string       `json:"headerImage"`
	Description  string       `json:"description"`
	SectionTitle string       `json:"sectionTitle"`
	Attractions  []Attraction `json:"attractions"`
	WebsiteInfo  string       `json:"websiteInfo"`
	WebsiteURL   string       `json:"websiteUrl"`
}

func (KampoengRawaContent) Kind() string { return ContentKampoengRawa }

func (c KampoengRawaContent) Validate() []string {
	fields := missing(map[string]string{
		"title":       c.Title,
		"headerImage": c.HeaderImage,
	})
	return append(fields, missingAttractions(c.Attractions)...)
}

type LuckyLandContent struct {
	Title        string       `json:"title"`
	HeaderImage  string       `json:"headerImage"`
	Description  string       `json:"description"`
	SectionTitle string       `json:"sectionTitle"`
	Attractions  []Attraction `json:"attractions"`
	WebsiteInfo  string       `json:"websiteInfo"`
	ContactInfo  string       `json:"contactInfo"`
}

func (LuckyLandContent) Kind() string { return ContentLuckyLand }

func (c LuckyLandContent) Validate() []string {
	fields := missing(map[string]string{
		"title":       c.Title,
		"headerImage": c.HeaderImage,
	})
	return append(fields, missingAttractions(c.Attractions)...)
}

type RawaPeningContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	HeroImage   string   `json:"heroImage"`
	Content     string   `json:"content"`
	Features    []string `json:"features"`
}

func (RawaPeningContent) Kind() string { return ContentRawaPening }

func (c RawaPeningContent) Validate() []string {
	return missing(map[string]string{
		"title":     c.Title,
		"heroImage": c.HeroImage,
	})
}

// ContentKinds lists every kind in a stable order.
var ContentKinds = []string{
	ContentHomepage,
	ContentInfoPaket,
	ContentPerahuMesin,
	ContentKampoengRawa,
	ContentLuckyLand,
	ContentRawaPening,
}

// NewPageSchema returns the default content for kind, or nil for an unknown kind.
func NewPageSchema(kind string) PageSchema {
	switch kind {
	case ContentHomepage:
		return &HomepageContent{
			Hero: HeroSection{
				Title:           "Desa Wisata, Desa Budaya, Desa Bejalen",
				Subtitle:        "Dukungan dan kedatangan Anda tidak hanya menciptakan pengalaman bermakna, tetapi juga memberdayakan ekonomi lokal",
				BackgroundImage: "/header-home.png",
			},
			About: AboutSection{
				Title:       "Desa Wisata Untuk Masa Berkelanjutan",
				Description: "Desa Bejalen merupakan salah satu destinasi desa wisata yang terletak di Kecamatan Ambarawa, Kabupaten Semarang, Provinsi Jawa Tengah. Desa ini terletak tepat di pinggir Danau Rawa Pening yang dikelilingi oleh rangkaian pegunungan, yaitu Gunung Merbabu, Gunung Telomoyo, dan Gunung Ungaran.",
			},
			RawaPening: FeatureSection{
				Title:       "Vast Expanse of Swamp Water",
				Subtitle:    "Desa Wisata Bejalen",
				Description: "Menyegarkan pikiran di akhir pekan tidak memerlukan rencana wisata yang mewah. Rekreasi sederhana di Rawa Pening saja bisa jadi kegiatan yang menyenangkan.",
				Image:       "/header-home2.png",
			},
			Destinations: HeadingSection{
				Title:    "Pada Desa Hepi Desa Bejalen",
				Subtitle: "Destinasi",
			},
		}
	case ContentInfoPaket:
		return &InfoPaketContent{
			Title:      "Info Paket\nWisata",
			PromoImage: "/poster.png",
		}
	case ContentPerahuMesin:
		return &PerahuMesinContent{
			Title:        "Perahu\nMesin",
			HeaderImage:  "/perahuMesinHeader.png",
			Description:  "Arungi luasnya Rawa Pening dengan menaiki perahu mesin pada Desa Wisata Bejalen. Nikmati serunya menaiki perahu dengan keluarga, orang tersayang sambil menikmati pemandangan alam sekitar.",
			WeekdayPrice: "IDR. 120.000",
			WeekendPrice: "IDR. 150.000",
			Capacity:     "8",
			Duration:     "30 menit",
		}
	case ContentKampoengRawa:
		return &KampoengRawaContent{
			Title:        "Kampoeng\nRawa",
			HeaderImage:  "/kampoengRawa.png",
			Description:  "Objek wisata yang paling sering dikunjungi oleh wisatawan Kampoeng Rawa. Nikmati banyak hal-hal menarik yang bisa kalian temukan disini.",
			SectionTitle: "Yang Menarik di\nKampoeng Rawa",
			Attractions: []Attraction{
				{Name: "Kuliner", Image: "/kuliner.png"},
				{Name: "Joglo Apung", Image: "/jogloApung.png"},
				{Name: "Spot Foto", Image: "/spot.png"},
			},
			WebsiteInfo: "Info Lebih Lanjut Kunjungi :",
			WebsiteURL:  "https://kampoengrawa.com/",
		}
	case ContentLuckyLand:
		return &LuckyLandContent{
			Title:        "Lucky\nLand",
			HeaderImage:  "/lucky.png",
			Description:  "Tempat wisata Lucky Land yang menawarkan berbagai wahana permainan seru dan menyenangkan untuk seluruh keluarga.",
			SectionTitle: "Wahana di\nLucky Land",
			Attractions: []Attraction{
				{Name: "Wahana Permainan", Image: "/lucky.png"},
				{Name: "Area Bermain", Image: "/lucky.png"},
				{Name: "Spot Foto", Image: "/spot.png"},
			},
			WebsiteInfo: "Info Lebih Lanjut Hubungi :",
			ContactInfo: "0812-3456-7890",
		}
	case ContentRawaPening:
		return &RawaPeningContent{
			Title:       "Rawa Pening",
			Description: "Destinasi wisata alam yang menawan dengan pemandangan danau yang indah.",
			HeroImage:   "/rawaPeningHeader.png",
			Content:     "Rawa Pening merupakan danau alami yang terletak di Kabupaten Semarang, Jawa Tengah. Tempat ini menawarkan keindahan alam yang memukau dengan berbagai aktivitas wisata air yang menarik.",
			Features: []string{
				"Pemandangan danau yang indah",
				"Wisata air dan perahu",
				"Spot foto yang instagramable",
				"Kuliner khas danau",
			},
		}
	}
	return nil
}

func missing(fields map[string]string) []string {
	var out []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func missingAttractions(items []Attraction) []string {
	var out []string
	for i, a := range items {
		if strings.TrimSpace(a.Name) == "" {
			out = append(out, fmt.Sprintf("attractions[%d].name", i))
		}
		if strings.TrimSpace(a.Image) == "" {
			out = append(out, fmt.Sprintf("attractions[%d].image", i))
		}
	}
	return out
}
