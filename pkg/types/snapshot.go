package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/enums"
)

// MediaSnapshot captures the licensable item as it looked when it entered
// the cart. Display fields may drift from the live media row afterwards;
// pricing always re-reads the live row at checkout.
type MediaSnapshot struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Type           enums.MediaType `json:"type"`
	ThumbnailURL   string          `json:"thumbnail_url,omitempty"`
	UnitPriceCents int64           `json:"unit_price_cents"`
}

// CreatorSnapshot identifies the owning creator for cart grouping.
type CreatorSnapshot struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

// CartSnapshot is stored as jsonb on each cart line.
type CartSnapshot struct {
	Media   MediaSnapshot   `json:"media"`
	Creator CreatorSnapshot `json:"creator"`
}

// Value marshals the snapshot for a jsonb column.
func (s CartSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan decodes a jsonb column into the snapshot.
func (s *CartSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = CartSnapshot{}
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("cart snapshot: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, s)
}

func toBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
