package enums

import "fmt"

// Region scopes where licensed content may be used. It is advisory and
// carries no price multiplier.
type Region string

const (
	RegionWorldwide        Region = "worldwide"
	RegionNorthAmerica     Region = "north-america"
	RegionEurope           Region = "europe"
	RegionAsiaPacific      Region = "asia-pacific"
	RegionLatinAmerica     Region = "latin-america"
	RegionMiddleEastAfrica Region = "middle-east-africa"
)

var validRegions = []Region{
	RegionWorldwide,
	RegionNorthAmerica,
	RegionEurope,
	RegionAsiaPacific,
	RegionLatinAmerica,
	RegionMiddleEastAfrica,
}

// String returns the literal string for the region.
func (r Region) String() string {
	return string(r)
}

// IsValid reports whether the region is known. The empty region is treated
// as unset by callers, not as valid.
func (r Region) IsValid() bool {
	for _, candidate := range validRegions {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRegion converts raw input into a Region.
func ParseRegion(value string) (Region, error) {
	for _, candidate := range validRegions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid region %q", value)
}
