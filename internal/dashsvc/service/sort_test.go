package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortType(t *testing.T) {
	tests := []struct {
		in   string
		want SortType
	}{
		{"Number", SortNumber},
		{"Alphabetical", SortAlphabetical},
		{"Rarity", SortRarity},
		{"Quantity", SortQuantity},
		{"", SortNone},
		{"number", SortNone}, // names are case sensitive on the wire
		{"Banana", SortNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSortType(tt.in), "input %q", tt.in)
	}
}

func TestSortTypeRoundTrip(t *testing.T) {
	for _, name := range SortTypeNames {
		assert.Equal(t, name, ParseSortType(name).String())
	}
	assert.Equal(t, "", SortNone.String())
}
