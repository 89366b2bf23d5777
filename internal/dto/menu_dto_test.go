package dto

import (
	"testing"

	"campuseats/internal/entity"
)

func TestGroupMenuByCategoryPreservesOrder(t *testing.T) {
	items := []entity.MenuItem{
		{Name: "Espresso", Category: "Drinks"},
		{Name: "Latte", Category: "Drinks"},
		{Name: "Burger", Category: "Mains"},
		{Name: "Fries", Category: "Sides"},
	}

	groups := GroupMenuByCategory(items)
	if len(groups) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(groups))
	}
	if groups[0].Category != "Drinks" || len(groups[0].Items) != 2 {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if groups[1].Category != "Mains" || groups[2].Category != "Sides" {
		t.Fatalf("category order lost: %+v", groups)
	}
}

func TestGroupMenuByCategoryEmpty(t *testing.T) {
	if groups := GroupMenuByCategory(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}
