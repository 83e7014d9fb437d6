package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

func newQuoteFixture(t *testing.T) (*checkoutFixture, QuoteService) {
	t.Helper()
	f := newCheckoutFixture(t)
	svc, err := NewQuoteService(f.media, f.profiles, testDefaultUnitPrice)
	if err != nil {
		t.Fatalf("new quote service: %v", err)
	}
	return f, svc
}

func TestQuoteWithDefaultUnitPrice(t *testing.T) {
	t.Parallel()

	_, svc := newQuoteFixture(t)

	result, err := svc.Quote(context.Background(), QuoteInput{
		Count:          2,
		MediaType:      "image",
		DurationMonths: 3,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if result.UnitPriceCents != testDefaultUnitPrice {
		t.Fatalf("unit = %d, want platform default", result.UnitPriceCents)
	}
	if result.PriceCents != 10000 {
		t.Fatalf("price = %d, want 10000", result.PriceCents)
	}
}

func TestQuoteAgainstMediaItem(t *testing.T) {
	t.Parallel()

	f, svc := newQuoteFixture(t)
	id := f.addLine(enums.MediaTypeVideo, 10000)

	result, err := svc.Quote(context.Background(), QuoteInput{
		MediaItemID: &id,
		Count:       1,
		// The caller's claimed type is overridden by the item's own.
		MediaType:      "image",
		DurationMonths: 3,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if result.UnitPriceCents != 10000 {
		t.Fatalf("unit = %d, want the item's own price", result.UnitPriceCents)
	}
	if result.PriceCents != 15000 {
		t.Fatalf("price = %d, want 15000 (video multiplier applied)", result.PriceCents)
	}
}

func TestQuoteProfileFallbackPrice(t *testing.T) {
	t.Parallel()

	f, svc := newQuoteFixture(t)
	photoPrice := int64(7000)
	f.profiles.profiles[f.creatorID].PhotoPriceCents = &photoPrice

	id := uuid.New()
	f.media.items[id] = &models.MediaItem{
		ID: id, CreatorID: f.creatorID, Type: enums.MediaTypeImage, Available: true,
	}

	result, err := svc.Quote(context.Background(), QuoteInput{
		MediaItemID:    &id,
		Count:          1,
		DurationMonths: 3,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if result.UnitPriceCents != 7000 {
		t.Fatalf("unit = %d, want profile photo price", result.UnitPriceCents)
	}
}

func TestQuoteLegacyTerritory(t *testing.T) {
	t.Parallel()

	_, svc := newQuoteFixture(t)

	cases := []struct {
		territory string
		want      int64
	}{
		{"local", 5000},
		{"regional", 6000},
		{"global", 7500},
	}
	for _, tc := range cases {
		result, err := svc.Quote(context.Background(), QuoteInput{
			Count:          1,
			MediaType:      "image",
			DurationMonths: 3,
			Territory:      tc.territory,
		})
		if err != nil {
			t.Fatalf("quote %s: %v", tc.territory, err)
		}
		if result.PriceCents != tc.want {
			t.Fatalf("%s price = %d, want %d", tc.territory, result.PriceCents, tc.want)
		}
	}
}

func TestQuoteLegacyCommercialDoubles(t *testing.T) {
	t.Parallel()

	_, svc := newQuoteFixture(t)

	result, err := svc.Quote(context.Background(), QuoteInput{
		Count:          1,
		MediaType:      "image",
		DurationMonths: 3,
		Territory:      "local",
		Commercial:     true,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if result.PriceCents != 10000 {
		t.Fatalf("price = %d, want 10000", result.PriceCents)
	}
}

func TestQuoteValidation(t *testing.T) {
	t.Parallel()

	_, svc := newQuoteFixture(t)

	cases := []QuoteInput{
		{Count: -1, MediaType: "image", DurationMonths: 3},
		{Count: 1, MediaType: "hologram", DurationMonths: 3},
		{Count: 1, MediaType: "image", DurationMonths: 3, Territory: "galactic"},
		{Count: 1, MediaType: "image", DurationMonths: 3, Region: "moon"},
	}
	for _, input := range cases {
		_, err := svc.Quote(context.Background(), input)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
}

func TestQuoteZeroCount(t *testing.T) {
	t.Parallel()

	_, svc := newQuoteFixture(t)

	result, err := svc.Quote(context.Background(), QuoteInput{Count: 0})
	if err != nil {
		t.Fatalf("an empty selection is a valid quote of zero: %v", err)
	}
	if result.PriceCents != 0 {
		t.Fatalf("price = %d, want 0", result.PriceCents)
	}
}
