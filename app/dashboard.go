package app

import (
	"context"

	"github.com/nzsnyn/bejalen/models"
)

const recentBookingsLimit = 5

func (s *Services) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)
	if stats.TotalBookings, err = s.Bookings.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPackages, err = s.Packages.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.TotalContacts, err = s.Contacts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalGalleryItems, err = s.Gallery.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = s.Bookings.CountByStatus(ctx, models.BookingPending); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.Bookings.ConfirmedRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.RecentBookings, err = s.Bookings.Recent(ctx, recentBookingsLimit); err != nil {
		return nil, err
	}
	if stats.RecentBookings == nil {
		stats.RecentBookings = []models.Booking{}
	}
	return &stats, nil
}
