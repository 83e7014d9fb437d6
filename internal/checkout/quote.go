package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/internal/pricing"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

// QuoteInput is one pricing question. When MediaItemID is set, the unit
// price comes from the live media row (with profile fallback); otherwise
// the platform default applies. Territory switches to the legacy scheme.
type QuoteInput struct {
	MediaItemID     *uuid.UUID
	Count           int
	MediaType       string
	IncludesEditing bool
	Exclusivity     bool
	DurationMonths  int
	Region          string
	Territory       string
	Commercial      bool
}

// QuoteResult carries the priced amount plus the inputs it was derived from.
type QuoteResult struct {
	UnitPriceCents int64 `json:"unit_price_cents"`
	PriceCents     int64 `json:"price_cents"`
}

// QuoteService answers pricing questions without touching any order state.
type QuoteService interface {
	Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error)
}

type quoteService struct {
	media            mediaLoader
	profiles         profileLoader
	defaultUnitPrice int64
}

// NewQuoteService builds the stateless quote endpoint's backing service.
func NewQuoteService(media mediaLoader, profiles profileLoader, defaultUnitPriceCents int64) (QuoteService, error) {
	if media == nil {
		return nil, fmt.Errorf("media loader required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profile loader required")
	}
	return &quoteService{
		media:            media,
		profiles:         profiles,
		defaultUnitPrice: defaultUnitPriceCents,
	}, nil
}

func (s *quoteService) Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error) {
	mediaType := enums.MediaType(input.MediaType)

	unit, err := s.resolveUnit(ctx, input.MediaItemID, &mediaType)
	if err != nil {
		return nil, err
	}

	if input.Territory != "" {
		territory, err := enums.ParseTerritory(input.Territory)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid territory")
		}
		cents, err := pricing.QuoteLegacyCents(unit, pricing.LegacySelection{
			Count:          input.Count,
			MediaType:      mediaType,
			Territory:      territory,
			Commercial:     input.Commercial,
			DurationMonths: input.DurationMonths,
		})
		if err != nil {
			return nil, err
		}
		return &QuoteResult{UnitPriceCents: unit, PriceCents: cents}, nil
	}

	cents, err := pricing.QuoteCents(unit, pricing.Selection{
		Count:           input.Count,
		MediaType:       mediaType,
		IncludesEditing: input.IncludesEditing,
		Exclusivity:     input.Exclusivity,
		DurationMonths:  input.DurationMonths,
		Region:          enums.Region(input.Region),
	})
	if err != nil {
		return nil, err
	}
	return &QuoteResult{UnitPriceCents: unit, PriceCents: cents}, nil
}

// resolveUnit looks up the unit price behind a referenced media item. The
// item's own type overrides whatever the caller claimed.
func (s *quoteService) resolveUnit(ctx context.Context, mediaItemID *uuid.UUID, mediaType *enums.MediaType) (int64, error) {
	if mediaItemID == nil {
		return s.defaultUnitPrice, nil
	}

	item, err := s.media.GetAvailableByID(ctx, *mediaItemID)
	if err != nil {
		return 0, err
	}
	profile, err := s.profiles.GetByID(ctx, item.CreatorID)
	if err != nil {
		return 0, err
	}
	*mediaType = item.Type
	return pricing.ResolveUnitPriceCents(item, profile, s.defaultUnitPrice), nil
}
