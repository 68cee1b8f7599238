package service

import "errors"

// SortType selects the ordering policy for a card list.
type SortType int

const (
	SortNone SortType = iota // unrecognized input, list keeps insertion order
	SortNumber
	SortAlphabetical
	SortRarity
	SortQuantity
)

// SortTypeNames are the wire names accepted by ParseSortType, in the
// order they appear in the dashboard selector.
var SortTypeNames = []string{"Number", "Alphabetical", "Rarity", "Quantity"}

// ParseSortType maps a query parameter to a SortType. Anything it does
// not recognize becomes SortNone rather than an error.
func ParseSortType(s string) SortType {
	switch s {
	case "Number":
		return SortNumber
	case "Alphabetical":
		return SortAlphabetical
	case "Rarity":
		return SortRarity
	case "Quantity":
		return SortQuantity
	default:
		return SortNone
	}
}

func (t SortType) String() string {
	switch t {
	case SortNumber:
		return "Number"
	case SortAlphabetical:
		return "Alphabetical"
	case SortRarity:
		return "Rarity"
	case SortQuantity:
		return "Quantity"
	default:
		return ""
	}
}

// rarityRank fixes the scarcity order, rarest first. A rarity outside
// this table is a catalog integrity fault, not user input.
var rarityRank = map[string]int{
	"legendary": 0,
	"epic":      1,
	"rare":      2,
	"common":    3,
}

// ErrUnknownRarity is returned by a Rarity sort when an item carries a
// rarity outside the fixed set.
var ErrUnknownRarity = errors.New("unknown rarity")
