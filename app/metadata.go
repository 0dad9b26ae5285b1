package app

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

const seededAtKey = "seeded_at"

func setMetadata(db *gorm.DB, key, value string) error {
	return db.Exec(`
        INSERT INTO metadata(key, value)
        VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value
    `, key, value).Error
}

func setMetadataTime(db *gorm.DB, key string, t time.Time) error {
	return setMetadata(db, key, t.UTC().Format(time.RFC3339))
}

// getMetadataTime returns the zero time when key was never set.
func getMetadataTime(db *gorm.DB, key string) (time.Time, error) {
	var ts sql.NullString
	row := db.Raw(`SELECT value FROM metadata WHERE key = ?`, key).Row()
	if err := row.Scan(&ts); err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	if !ts.Valid {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, ts.String)
}
