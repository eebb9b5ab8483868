package sellerbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AssetType classifies an asset as either a product the seller makes and
// sells, or a piece of equipment the seller buys.
type AssetType int

const (
	// Product is a sellable item: its transactions are income and its
	// cost basis is the material cost of one unit.
	Product AssetType = iota
	// Equipment is a purchased item: its transactions are expense and
	// its cost basis is the usual price of one unit.
	Equipment
)

func (t AssetType) String() string {
	switch t {
	case Product:
		return "product"
	case Equipment:
		return "equipment"
	default:
		return "unknown"
	}
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "product":
		return Product, nil
	case "equipment":
		return Equipment, nil
	default:
		return 0, fmt.Errorf("unknown asset type: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface, asset types are
// persisted by name rather than by a numeric code.
func (t AssetType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *AssetType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAssetType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Asset is an equipment item or product tracked for stock and costing.
type Asset struct {
	ID          ID
	Name        string
	Description string
	Type        AssetType
	Stock       int   // units on hand, never negative after a committed operation
	CostBasis   Money // material cost per unit for a Product, usual price for Equipment
}

func (a Asset) String() string {
	return fmt.Sprintf("%s) %s: %d pc", a.ID, a.Name, a.Stock)
}
