package pricing

import (
	"testing"

	"github.com/stockless/stockless-backend/pkg/enums"
)

func TestQuoteLegacyCentsTerritories(t *testing.T) {
	t.Parallel()

	base := LegacySelection{Count: 1, MediaType: enums.MediaTypeImage, DurationMonths: 3}

	cases := []struct {
		territory enums.Territory
		want      int64
	}{
		{enums.TerritoryLocal, 5000},
		{enums.TerritoryRegional, 6000},
		{enums.TerritoryGlobal, 7500},
	}

	for _, tc := range cases {
		sel := base
		sel.Territory = tc.territory
		got, err := QuoteLegacyCents(5000, sel)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.territory, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.territory, tc.want, got)
		}
	}
}

func TestQuoteLegacyCentsCommercialDoubles(t *testing.T) {
	t.Parallel()

	sel := LegacySelection{
		Count:          1,
		MediaType:      enums.MediaTypeImage,
		Territory:      enums.TerritoryLocal,
		DurationMonths: 3,
	}

	editorial, err := QuoteLegacyCents(5000, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel.Commercial = true
	commercial, err := QuoteLegacyCents(5000, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if commercial != editorial*2 {
		t.Fatalf("expected commercial to double %d, got %d", editorial, commercial)
	}
}

func TestQuoteLegacyCentsZeroSelection(t *testing.T) {
	t.Parallel()

	got, err := QuoteLegacyCents(5000, LegacySelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected zero quote, got %d", got)
	}
}

func TestQuoteLegacyCentsInvalidTerritory(t *testing.T) {
	t.Parallel()

	sel := LegacySelection{
		Count:          1,
		MediaType:      enums.MediaTypeImage,
		Territory:      "continental",
		DurationMonths: 3,
	}
	if _, err := QuoteLegacyCents(5000, sel); err == nil {
		t.Fatal("expected invalid territory error")
	}
}

func TestUpgradeLegacyMapping(t *testing.T) {
	t.Parallel()

	sel := LegacySelection{
		Count:          2,
		MediaType:      enums.MediaTypeVideo,
		Territory:      enums.TerritoryGlobal,
		Commercial:     true,
		DurationMonths: 12,
	}

	upgraded := UpgradeLegacy(sel)

	if upgraded.Count != sel.Count || upgraded.MediaType != sel.MediaType {
		t.Fatalf("count/media type not preserved: %+v", upgraded)
	}
	if !upgraded.Exclusivity {
		t.Fatal("commercial use should map to exclusivity")
	}
	if upgraded.IncludesEditing {
		t.Fatal("legacy selections never carry editing rights")
	}
	if upgraded.Region != enums.RegionWorldwide {
		t.Fatalf("global territory should map to worldwide region, got %q", upgraded.Region)
	}
	if upgraded.DurationMonths != 12 {
		t.Fatalf("duration not preserved, got %d", upgraded.DurationMonths)
	}

	regional := UpgradeLegacy(LegacySelection{Territory: enums.TerritoryRegional})
	if regional.Region != "" {
		t.Fatalf("narrower territories should leave region unset, got %q", regional.Region)
	}
}
