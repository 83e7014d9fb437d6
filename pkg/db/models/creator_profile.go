package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CreatorProfile holds the public storefront data for a creator account.
// A creator is listed in the public catalog only once ContractSigned and
// SocialMediaConnected are both true.
type CreatorProfile struct {
	ID                   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID               uuid.UUID      `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	DisplayName          string         `gorm:"column:display_name;not null"`
	Bio                  string         `gorm:"column:bio;not null;default:''"`
	AvatarURL            string         `gorm:"column:avatar_url;not null;default:''"`
	Tags                 pq.StringArray `gorm:"type:text[];column:tags;not null;default:ARRAY[]::text[]"`
	Restrictions         pq.StringArray `gorm:"type:text[];column:restrictions;not null;default:ARRAY[]::text[]"`
	PhotoPriceCents      *int64         `gorm:"column:photo_price_cents"`
	VideoPriceCents      *int64         `gorm:"column:video_price_cents"`
	SocialMediaConnected bool           `gorm:"column:social_media_connected;not null;default:false"`
	ContractSigned       bool           `gorm:"column:contract_signed;not null;default:false"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *CreatorProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Listed reports whether the profile is visible in the public catalog.
func (p CreatorProfile) Listed() bool {
	return p.ContractSigned && p.SocialMediaConnected
}
