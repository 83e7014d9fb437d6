package enums

import "fmt"

// LicenseDuration is the licensed usage window in months.
type LicenseDuration int

const (
	LicenseDuration3Months  LicenseDuration = 3
	LicenseDuration6Months  LicenseDuration = 6
	LicenseDuration12Months LicenseDuration = 12
	LicenseDuration24Months LicenseDuration = 24
)

var validLicenseDurations = []LicenseDuration{
	LicenseDuration3Months,
	LicenseDuration6Months,
	LicenseDuration12Months,
	LicenseDuration24Months,
}

// Months returns the plain month count.
func (d LicenseDuration) Months() int {
	return int(d)
}

// IsValid reports whether the duration is one of the offered buckets.
func (d LicenseDuration) IsValid() bool {
	for _, candidate := range validLicenseDurations {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseLicenseDuration converts a raw month count into a LicenseDuration.
func ParseLicenseDuration(months int) (LicenseDuration, error) {
	for _, candidate := range validLicenseDurations {
		if int(candidate) == months {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("invalid license duration %d months", months)
}
