package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
	"github.com/mgacha/dashboard-services/internal/dashsvc/store"
)

// CollectionService builds the per-user card list by joining inventory
// records against the catalog and ordering the result.
type CollectionService struct {
	inventory store.InventoryStore
	cards     store.CardStore
}

func NewCollectionService(inventory store.InventoryStore, cards store.CardStore) *CollectionService {
	return &CollectionService{
		inventory: inventory,
		cards:     cards,
	}
}

// BuildCardList returns the display items for userID ordered per
// sortType. An empty userID yields an empty list, not an error. An
// inventory record whose card is missing from the catalog is logged
// and skipped.
func (s *CollectionService) BuildCardList(ctx context.Context, userID string, sortType SortType, reverse bool) ([]models.CardItem, error) {
	items := []models.CardItem{}
	if userID == "" {
		return items, nil
	}

	records, err := s.inventory.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	for _, rec := range records {
		card, err := s.cards.FindCard(ctx, rec.CardID)
		if err != nil {
			return nil, fmt.Errorf("failed to load card: %w", err)
		}
		if card == nil {
			log.Warnf("inventory of user %s references missing card %s, skipping", userID, rec.CardID)
			continue
		}

		// defaults are assigned here and nowhere else: quantity 1
		// when the record omits it, number 0 when the catalog does
		quantity := rec.Quantity
		if quantity < 1 {
			quantity = 1
		}

		items = append(items, models.CardItem{
			Number:   card.Number,
			Name:     card.Name,
			Rarity:   card.Rarity,
			ImageURL: card.ImageURL,
			Quantity: quantity,
		})
	}

	if err := sortCardItems(items, sortType, reverse); err != nil {
		return nil, err
	}
	return items, nil
}

// sortCardItems orders items in place. All sorts are stable, so ties
// keep their prior relative order.
func sortCardItems(items []models.CardItem, sortType SortType, reverse bool) error {
	switch sortType {
	case SortNumber:
		sort.SliceStable(items, func(i, j int) bool {
			if reverse {
				return items[i].Number > items[j].Number
			}
			return items[i].Number < items[j].Number
		})
	case SortAlphabetical:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
			if reverse {
				return a > b
			}
			return a < b
		})
	case SortRarity:
		for _, it := range items {
			if _, ok := rarityRank[strings.ToLower(it.Rarity)]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownRarity, it.Rarity)
			}
		}
		sort.SliceStable(items, func(i, j int) bool {
			a := rarityRank[strings.ToLower(items[i].Rarity)]
			b := rarityRank[strings.ToLower(items[j].Rarity)]
			if reverse {
				return a > b
			}
			return a < b
		})
	case SortQuantity:
		// always highest quantity first; the reverse flag is accepted
		// but ignored here, which existing clients depend on
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Quantity > items[j].Quantity
		})
	case SortNone:
		// insertion order
	}
	return nil
}
