package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/enums"
)

// MediaItem is a single licensable piece of content. UnitPriceCents tracks
// the owning profile's photo/video price and is re-synced whenever the
// creator updates their pricing.
type MediaItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CreatorID      uuid.UUID       `gorm:"column:creator_id;type:uuid;not null;index"`
	Title          string          `gorm:"column:title;not null"`
	Type           enums.MediaType `gorm:"column:type;type:text;not null"`
	URL            string          `gorm:"column:url;not null"`
	ThumbnailURL   string          `gorm:"column:thumbnail_url;not null;default:''"`
	UnitPriceCents *int64          `gorm:"column:unit_price_cents"`
	Available      bool            `gorm:"column:available;not null"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (m *MediaItem) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
