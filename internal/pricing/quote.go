package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/stockless/stockless-backend/pkg/enums"
	apperrors "github.com/stockless/stockless-backend/pkg/errors"
)

// Multipliers compound by sequential multiplication of the running total.
// The order is part of the quoting contract: changing it changes rounding
// outcomes, so quotes would stop being reproducible.
var (
	videoMultiplier       = decimal.NewFromFloat(1.5)
	editingMultiplier     = decimal.NewFromFloat(1.3)
	exclusivityMultiplier = decimal.NewFromInt(2)
	longTermMultiplier    = decimal.NewFromFloat(1.5)
	midTermMultiplier     = decimal.NewFromFloat(1.2)
)

// Selection is one license configuration to be priced. Region is advisory
// and optional; it never affects the price.
type Selection struct {
	Count           int
	MediaType       enums.MediaType
	IncludesEditing bool
	Exclusivity     bool
	DurationMonths  int
	Region          enums.Region
}

// QuoteCents prices a selection against the given per-item unit price.
// An empty selection is a valid quote of zero, not an error.
func QuoteCents(unitPriceCents int64, sel Selection) (int64, error) {
	if err := validateSelection(unitPriceCents, sel); err != nil {
		return 0, err
	}
	if sel.Count == 0 {
		return 0, nil
	}

	total := decimal.NewFromInt(unitPriceCents).Mul(decimal.NewFromInt(int64(sel.Count)))
	if sel.MediaType == enums.MediaTypeVideo {
		total = total.Mul(videoMultiplier)
	}
	if sel.IncludesEditing {
		total = total.Mul(editingMultiplier)
	}
	if sel.Exclusivity {
		total = total.Mul(exclusivityMultiplier)
	}
	total = total.Mul(durationMultiplier(sel.DurationMonths))

	// Round half-up to the nearest cent.
	return total.Round(0).IntPart(), nil
}

func durationMultiplier(months int) decimal.Decimal {
	switch {
	case months >= 24:
		return longTermMultiplier
	case months >= 12:
		return midTermMultiplier
	default:
		return decimal.NewFromInt(1)
	}
}

func validateSelection(unitPriceCents int64, sel Selection) error {
	if unitPriceCents < 0 {
		return apperrors.New(apperrors.CodeValidation, "unit price cannot be negative")
	}
	if sel.Count < 0 {
		return apperrors.New(apperrors.CodeValidation, "selection count cannot be negative")
	}
	if sel.Count == 0 {
		return nil
	}
	if !sel.MediaType.IsValid() {
		return apperrors.New(apperrors.CodeValidation, "invalid media type")
	}
	if !enums.LicenseDuration(sel.DurationMonths).IsValid() {
		return apperrors.New(apperrors.CodeValidation, "invalid license duration")
	}
	if sel.Region != "" && !sel.Region.IsValid() {
		return apperrors.New(apperrors.CodeValidation, "invalid region")
	}
	return nil
}
