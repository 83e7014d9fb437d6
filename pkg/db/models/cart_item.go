package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/types"
)

// UniqueCartUserMedia names the constraint behind the one-line-per-item
// rule: a buyer can hold at most one cart line per media item.
const UniqueCartUserMedia = "uq_cart_items_user_media"

// CartItem is one buyer's claim on one media item, carrying a display
// snapshot taken when the line was added.
type CartItem struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID          `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_cart_items_user_media"`
	MediaItemID uuid.UUID          `gorm:"column:media_item_id;type:uuid;not null;uniqueIndex:uq_cart_items_user_media"`
	CreatorID   uuid.UUID          `gorm:"column:creator_id;type:uuid;not null;index"`
	Snapshot    types.CartSnapshot `gorm:"column:snapshot;type:jsonb"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
}

func (c *CartItem) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
