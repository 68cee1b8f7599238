package models

// Card is an immutable catalog entry.
type Card struct {
	ID       string `json:"id"`
	Number   int    `json:"card_number"` // sequential number within the set
	Name     string `json:"name"`
	Rarity   string `json:"rarity"` // legendary, epic, rare or common
	ImageURL string `json:"image_url"`
}

// CardItem is a display row built per request by joining an inventory
// record against the catalog. Number defaults to 0 and Quantity to 1
// when the source data omits them; the defaults are assigned once
// during the join, nowhere else.
type CardItem struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Rarity   string `json:"rarity"`
	ImageURL string `json:"image_url"`
	Quantity int    `json:"quantity"`
}
