package service

import (
	"context"

	"campuseats/internal/entity"
	"campuseats/internal/repository"

	"github.com/google/uuid"
)

// Store adapters narrowing the kind-specific repositories to the
// AccountStore interface the verification engine works against.

type userAccountStore struct {
	users repository.UserRepository
}

func NewUserAccountStore(users repository.UserRepository) AccountStore {
	return userAccountStore{users: users}
}

func (s userAccountStore) FindByEmail(ctx context.Context, email string) (Account, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}
	return user, nil
}

func (s userAccountStore) Create(ctx context.Context, account Account) error {
	return s.users.Create(ctx, account.(*entity.User))
}

func (s userAccountStore) Save(ctx context.Context, account Account) error {
	return s.users.Update(ctx, account.(*entity.User))
}

func (s userAccountStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.users.DeleteByID(ctx, id)
}

type restaurantAccountStore struct {
	restaurants repository.RestaurantRepository
}

func NewRestaurantAccountStore(restaurants repository.RestaurantRepository) AccountStore {
	return restaurantAccountStore{restaurants: restaurants}
}

func (s restaurantAccountStore) FindByEmail(ctx context.Context, email string) (Account, error) {
	restaurant, err := s.restaurants.FindByEmail(ctx, email)
	if err != nil || restaurant == nil {
		return nil, err
	}
	return restaurant, nil
}

func (s restaurantAccountStore) Create(ctx context.Context, account Account) error {
	return s.restaurants.Create(ctx, account.(*entity.Restaurant))
}

func (s restaurantAccountStore) Save(ctx context.Context, account Account) error {
	return s.restaurants.Update(ctx, account.(*entity.Restaurant))
}

func (s restaurantAccountStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.restaurants.DeleteByID(ctx, id)
}
