package repository

import (
	"context"
	"errors"

	"campuseats/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	// FindForRestaurant returns the item only when it belongs to the given
	// restaurant, nil otherwise.
	FindForRestaurant(ctx context.Context, id, restaurantID uuid.UUID) (*entity.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]entity.MenuItem, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) FindForRestaurant(ctx context.Context, id, restaurantID uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC, name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
