package pricing

import (
	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
)

// ResolveUnitPriceCents picks the per-item price for a media item. The item's
// own price wins, then the owning profile's photo/video price, then the
// platform fallback.
func ResolveUnitPriceCents(item *models.MediaItem, profile *models.CreatorProfile, fallbackCents int64) int64 {
	if item != nil && item.UnitPriceCents != nil && *item.UnitPriceCents > 0 {
		return *item.UnitPriceCents
	}
	if profile != nil {
		switch {
		case item != nil && item.Type == enums.MediaTypeVideo && profile.VideoPriceCents != nil && *profile.VideoPriceCents > 0:
			return *profile.VideoPriceCents
		case item != nil && item.Type == enums.MediaTypeImage && profile.PhotoPriceCents != nil && *profile.PhotoPriceCents > 0:
			return *profile.PhotoPriceCents
		}
	}
	return fallbackCents
}
