package models

import "time"

type Admin struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username" json:"username"`
	Password  string    `gorm:"column:password" json:"-"`
	Email     string    `gorm:"column:email" json:"email"`
	Name      string    `gorm:"column:name" json:"name"`
	Role      string    `gorm:"column:role" json:"role"`
	IsActive  bool      `gorm:"column:is_active" json:"isActive"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Admin) TableName() string { return "admins" }

type TourPackage struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Price       int64     `gorm:"column:price" json:"price"`
	Duration    string    `gorm:"column:duration" json:"duration"`
	Capacity    int       `gorm:"column:capacity" json:"capacity"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	IsActive    bool      `gorm:"column:is_active" json:"isActive"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (TourPackage) TableName() string { return "tour_packages" }

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Booking struct {
	ID           string       `gorm:"column:id;primaryKey" json:"id"`
	CustomerName string       `gorm:"column:customer_name" json:"customerName"`
	Email        string       `gorm:"column:email" json:"email"`
	Phone        string       `gorm:"column:phone" json:"phone"`
	PackageID    string       `gorm:"column:package_id" json:"packageId"`
	Package      *TourPackage `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	BookingDate  time.Time    `gorm:"column:booking_date" json:"bookingDate"`
	TotalPrice   int64        `gorm:"column:total_price" json:"totalPrice"`
	Status       string       `gorm:"column:status" json:"status"`
	Notes        *string      `gorm:"column:notes" json:"notes"`
	CreatedAt    time.Time    `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"column:updated_at" json:"updatedAt"`
}

func (Booking) TableName() string { return "bookings" }

const (
	ContactNew     = "new"
	ContactRead    = "read"
	ContactReplied = "replied"
)

type Contact struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	Subject   string    `gorm:"column:subject" json:"subject"`
	Message   string    `gorm:"column:message" json:"message"`
	Status    string    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Contact) TableName() string { return "contacts" }

type GalleryItem struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	Category    string    `gorm:"column:category" json:"category"`
	IsActive    bool      `gorm:"column:is_active" json:"isActive"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (GalleryItem) TableName() string { return "gallery_items" }

type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// PageContent is the stored form of one editable page section. Data holds
// the JSON encoding of the typed schema for Kind.
type PageContent struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Kind      string    `gorm:"column:kind"`
	Data      string    `gorm:"column:data"`
	IsActive  bool      `gorm:"column:is_active"`
	Version   int       `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PageContent) TableName() string { return "page_contents" }

type DashboardStats struct {
	TotalBookings     int64     `json:"totalBookings"`
	TotalPackages     int64     `json:"totalPackages"`
	TotalContacts     int64     `json:"totalContacts"`
	TotalGalleryItems int64     `json:"totalGalleryItems"`
	PendingBookings   int64     `json:"pendingBookings"`
	TotalRevenue      int64     `json:"totalRevenue"`
	RecentBookings    []Booking `json:"recentBookings"`
}
