package repository

import (
	"context"
	"errors"

	"campuseats/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindByEmail(ctx context.Context, email string) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	// IncrementNewOrders bumps the new-orders counter without a
	// read-modify-write round trip.
	IncrementNewOrders(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *entity.ApprovalStatus) ([]entity.Restaurant, error)
	ListAvailable(ctx context.Context) ([]entity.Restaurant, error)
	Count(ctx context.Context) (int64, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByEmail(ctx context.Context, email string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Restaurant{}, "id = ?", id).Error
}

func (r *restaurantRepository) IncrementNewOrders(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.Restaurant{}).
		Where("id = ?", id).
		UpdateColumn("new_orders_count", gorm.Expr("new_orders_count + 1")).
		Error
}

func (r *restaurantRepository) List(ctx context.Context, status *entity.ApprovalStatus) ([]entity.Restaurant, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var restaurants []entity.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) ListAvailable(ctx context.Context) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	err := r.db.WithContext(ctx).
		Where("verified = ? AND status = ?", true, entity.ApprovalApproved).
		Order("created_at DESC").
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Restaurant{}).Count(&count).Error
	return count, err
}
