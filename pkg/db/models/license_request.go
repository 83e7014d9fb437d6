package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtypes "github.com/stockless/stockless-backend/pkg/db/types"
	"github.com/stockless/stockless-backend/pkg/enums"
	"github.com/stockless/stockless-backend/pkg/types"
)

// LicenseRequest is the per-creator order written at checkout. It bundles
// every media item the buyer took from one creator, the agreed terms, and
// the server-computed price.
type LicenseRequest struct {
	ID           uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BuyerID      uuid.UUID           `gorm:"column:buyer_id;type:uuid;not null;index"`
	CreatorID    uuid.UUID           `gorm:"column:creator_id;type:uuid;not null;index"`
	MediaItemIDs dbtypes.UUIDArray   `gorm:"type:uuid[];column:media_item_ids;not null;default:ARRAY[]::uuid[]"`
	Status       enums.RequestStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Terms        types.LicenseTerms  `gorm:"column:terms;type:jsonb"`
	PriceCents   int64               `gorm:"column:price_cents;not null"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (l *LicenseRequest) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
