package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/stockless/stockless-backend/pkg/enums"
	apperrors "github.com/stockless/stockless-backend/pkg/errors"
)

// The territory scheme predates regions. It prices scope directly and uses
// a commercial-use flag where the current scheme uses editing rights and
// exclusivity.
var (
	regionalTerritoryMultiplier = decimal.NewFromFloat(1.2)
	globalTerritoryMultiplier   = decimal.NewFromFloat(1.5)
	commercialMultiplier        = decimal.NewFromInt(2)
)

// LegacySelection is the old configuration shape, still accepted so stored
// quotes from early iterations can be re-priced.
type LegacySelection struct {
	Count          int
	MediaType      enums.MediaType
	Territory      enums.Territory
	Commercial     bool
	DurationMonths int
}

// QuoteLegacyCents prices a legacy selection. Local territory carries no
// multiplier; Regional is 1.2 and Global 1.5. Commercial use doubles the
// running total.
func QuoteLegacyCents(unitPriceCents int64, sel LegacySelection) (int64, error) {
	if unitPriceCents < 0 {
		return 0, apperrors.New(apperrors.CodeValidation, "unit price cannot be negative")
	}
	if sel.Count < 0 {
		return 0, apperrors.New(apperrors.CodeValidation, "selection count cannot be negative")
	}
	if sel.Count == 0 {
		return 0, nil
	}
	if !sel.MediaType.IsValid() {
		return 0, apperrors.New(apperrors.CodeValidation, "invalid media type")
	}
	if !sel.Territory.IsValid() {
		return 0, apperrors.New(apperrors.CodeValidation, "invalid territory")
	}
	if !enums.LicenseDuration(sel.DurationMonths).IsValid() {
		return 0, apperrors.New(apperrors.CodeValidation, "invalid license duration")
	}

	total := decimal.NewFromInt(unitPriceCents).Mul(decimal.NewFromInt(int64(sel.Count)))
	if sel.MediaType == enums.MediaTypeVideo {
		total = total.Mul(videoMultiplier)
	}
	switch sel.Territory {
	case enums.TerritoryRegional:
		total = total.Mul(regionalTerritoryMultiplier)
	case enums.TerritoryGlobal:
		total = total.Mul(globalTerritoryMultiplier)
	}
	if sel.Commercial {
		total = total.Mul(commercialMultiplier)
	}
	total = total.Mul(durationMultiplier(sel.DurationMonths))

	return total.Round(0).IntPart(), nil
}

// UpgradeLegacy maps the old shape onto the current one. The mapping is
// lossy: commercial use becomes exclusivity, a global territory becomes the
// worldwide region, and narrower territories leave the region unset.
// Upgraded selections are priced under the current multiplier set and may
// quote differently than the legacy scheme did.
func UpgradeLegacy(sel LegacySelection) Selection {
	upgraded := Selection{
		Count:          sel.Count,
		MediaType:      sel.MediaType,
		Exclusivity:    sel.Commercial,
		DurationMonths: sel.DurationMonths,
	}
	if sel.Territory == enums.TerritoryGlobal {
		upgraded.Region = enums.RegionWorldwide
	}
	return upgraded
}
