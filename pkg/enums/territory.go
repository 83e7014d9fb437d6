package enums

import "fmt"

// Territory is the legacy pricing scope used before regions existed.
type Territory string

const (
	TerritoryLocal    Territory = "local"
	TerritoryRegional Territory = "regional"
	TerritoryGlobal   Territory = "global"
)

var validTerritories = []Territory{
	TerritoryLocal,
	TerritoryRegional,
	TerritoryGlobal,
}

// String returns the literal string for the territory.
func (t Territory) String() string {
	return string(t)
}

// IsValid reports whether the territory is known.
func (t Territory) IsValid() bool {
	for _, candidate := range validTerritories {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTerritory converts raw input into a Territory.
func ParseTerritory(value string) (Territory, error) {
	for _, candidate := range validTerritories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid territory %q", value)
}
