package dto

import "campuseats/internal/entity"

type AddMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type MenuCategory struct {
	Category string            `json:"category"`
	Items    []entity.MenuItem `json:"items"`
}

type MenuResponse struct {
	Restaurant PublicRestaurant `json:"restaurant"`
	Menu       []MenuCategory   `json:"menu"`
}

// GroupMenuByCategory folds an item list already sorted by category then
// name into per-category sections, preserving that order.
func GroupMenuByCategory(items []entity.MenuItem) []MenuCategory {
	groups := make([]MenuCategory, 0)
	for _, item := range items {
		if n := len(groups); n > 0 && groups[n-1].Category == item.Category {
			groups[n-1].Items = append(groups[n-1].Items, item)
			continue
		}
		groups = append(groups, MenuCategory{
			Category: item.Category,
			Items:    []entity.MenuItem{item},
		})
	}
	return groups
}
