package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

// PageContent is the decoded form of a stored content row.
type PageContent struct {
	Content   models.PageSchema `json:"content"`
	IsActive  bool              `json:"isActive"`
	Version   int               `json:"version"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ContentUpdate is a partial update for one content kind. Top-level fields of
// Content replace the stored ones; fields it does not mention are kept.
type ContentUpdate struct {
	Content  json.RawMessage `json:"content"`
	IsActive *bool           `json:"isActive,omitempty"`
	Version  *int            `json:"version,omitempty"`
}

// ContentStore persists editable page sections, one row per kind.
type ContentStore struct {
	db *gorm.DB
}

func NewContentStore(db *gorm.DB) *ContentStore {
	return &ContentStore{db: db}
}

func isKnownKind(kind string) bool {
	return models.NewPageSchema(kind) != nil
}

func decodeContent(row *models.PageContent) (*PageContent, error) {
	schema := models.NewPageSchema(row.Kind)
	if schema == nil {
		return nil, fmt.Errorf("unknown content kind %q", row.Kind)
	}
	if err := json.Unmarshal([]byte(row.Data), schema); err != nil {
		return nil, fmt.Errorf("failed to decode %s content: %w", row.Kind, err)
	}
	return &PageContent{
		Content:   schema,
		IsActive:  row.IsActive,
		Version:   row.Version,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func findContentRow(tx *gorm.DB, kind string) (*models.PageContent, error) {
	var row models.PageContent
	err := tx.Where("kind = ?", kind).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func defaultContentRow(kind string) (*models.PageContent, error) {
	data, err := json.Marshal(models.NewPageSchema(kind))
	if err != nil {
		return nil, err
	}
	return &models.PageContent{
		ID:       uuid.NewString(),
		Kind:     kind,
		Data:     string(data),
		IsActive: true,
		Version:  1,
	}, nil
}

// Get returns the content for kind, creating the default row on first access.
func (s *ContentStore) Get(ctx context.Context, kind string) (*PageContent, error) {
	if !isKnownKind(kind) {
		return nil, notFoundError("unknown content kind %q", kind)
	}

	var row *models.PageContent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = findContentRow(tx, kind)
		if err != nil || row != nil {
			return err
		}
		log.Printf("No %s content found, creating default content", kind)
		row, err = defaultContentRow(kind)
		if err != nil {
			return err
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return decodeContent(row)
}

// mergeContent overlays the top-level fields of patch onto stored. A field
// present in patch replaces the stored value as a whole, nested objects and
// arrays included.
func mergeContent(stored, patch []byte) ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(stored, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode stored content: %w", err)
	}
	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return nil, err
	}
	for k, v := range overlay {
		fields[k] = v
	}
	return json.Marshal(fields)
}

// Update merges upd into the stored content for kind, validates the result
// and bumps the version. When upd.Version is set it must match the stored
// version, otherwise ErrVersionConflict is returned.
func (s *ContentStore) Update(ctx context.Context, kind string, upd ContentUpdate) (*PageContent, error) {
	if !isKnownKind(kind) {
		return nil, notFoundError("unknown content kind %q", kind)
	}
	patch := bytes.TrimSpace(upd.Content)
	if len(patch) == 0 || bytes.Equal(patch, []byte("null")) {
		return nil, validationError("Content is required")
	}

	var saved *models.PageContent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := findContentRow(tx, kind)
		if err != nil {
			return err
		}
		current := 0
		isNew := row == nil
		if isNew {
			if row, err = defaultContentRow(kind); err != nil {
				return err
			}
			row.Version = 0
		} else {
			current = row.Version
		}
		if upd.Version != nil && *upd.Version != current {
			return fmt.Errorf("%w: stored version is %d, got %d", ErrVersionConflict, current, *upd.Version)
		}

		merged, err := mergeContent([]byte(row.Data), patch)
		if err != nil {
			return validationError("invalid %s content: %v", kind, err)
		}
		schema := models.NewPageSchema(kind)
		if err := json.Unmarshal(merged, schema); err != nil {
			return validationError("invalid %s content: %v", kind, err)
		}
		if missing := schema.Validate(); len(missing) > 0 {
			return validationError("missing required fields: %s", strings.Join(missing, ", "))
		}

		data, err := json.Marshal(schema)
		if err != nil {
			return err
		}
		row.Data = string(data)
		if upd.IsActive != nil {
			row.IsActive = *upd.IsActive
		}
		row.Version = current + 1

		if isNew {
			saved = row
			return tx.Create(row).Error
		}

		res := tx.Model(&models.PageContent{}).
			Where("id = ? AND version = ?", row.ID, current).
			Updates(map[string]any{
				"data":      row.Data,
				"is_active": row.IsActive,
				"version":   row.Version,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s content changed concurrently", ErrVersionConflict, kind)
		}
		saved = row
		return tx.Where("id = ?", row.ID).First(saved).Error
	})
	if err != nil {
		return nil, err
	}
	return decodeContent(saved)
}
