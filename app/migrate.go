package app

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"strings"
)

//go:embed init.sql
var initSQL string

// schemaTables lists the tables created by init.sql, in creation order.
var schemaTables = []string{
	"admins",
	"tour_packages",
	"bookings",
	"contacts",
	"gallery_items",
	"page_contents",
	"metadata",
}

// RunMigrations applies the embedded schema. Every statement is idempotent,
// so it runs on each start.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(initSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Printf("Schema ready: %s", strings.Join(schemaTables, ", "))
	return nil
}
