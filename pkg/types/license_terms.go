package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/stockless/stockless-backend/pkg/enums"
)

// LicenseTerms records the licensing options a buyer selected. It is
// persisted as jsonb on license requests so the agreed terms survive later
// changes to the pricing configuration.
type LicenseTerms struct {
	MediaType       enums.MediaType `json:"media_type"`
	IncludesEditing bool            `json:"includes_editing"`
	Exclusivity     bool            `json:"exclusivity"`
	DurationMonths  int             `json:"duration_months"`
	Region          enums.Region    `json:"region,omitempty"`
}

// Value marshals the terms for a jsonb column.
func (t LicenseTerms) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan decodes a jsonb column into the terms.
func (t *LicenseTerms) Scan(value interface{}) error {
	if value == nil {
		*t = LicenseTerms{}
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("license terms: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, t)
}
