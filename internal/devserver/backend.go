// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver is the in-memory food-ordering backend used for local
// runs of the client and for end-to-end tests.
//
// It keeps accounts, restaurants, menus and favorites in process memory and
// loses everything on restart. Registration payloads are validated with the
// same rules the client forms use.
package devserver

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-foodie/internal/crypto"
	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
)

type account struct {
	name         string
	role         models.Role
	passwordHash string
}

// Backend is safe for concurrent use.
type Backend struct {
	mu sync.RWMutex

	// accounts by lowercased email ID
	accounts map[string]account
	// restaurants in registration order
	restaurants []*models.Restaurant
	// owners maps a lowercased admin email ID to its restaurant
	owners    map[string]*models.Restaurant
	favorites map[string][]string

	hasher    crypto.PasswordHasher
	validator validators.Validator
}

// NewBackend returns an empty backend.
func NewBackend(hasher crypto.PasswordHasher, validator validators.Validator) *Backend {
	return &Backend{
		accounts:  make(map[string]account),
		owners:    make(map[string]*models.Restaurant),
		favorites: make(map[string][]string),
		hasher:    hasher,
		validator: validator,
	}
}

func key(emailID string) string {
	return strings.ToLower(strings.TrimSpace(emailID))
}

// Login checks the credentials and returns the account role.
func (b *Backend) Login(_ context.Context, emailID, password string) (models.Role, error) {
	b.mu.RLock()
	acc, ok := b.accounts[key(emailID)]
	b.mu.RUnlock()

	if !ok || !b.hasher.Verify(password, acc.passwordHash) {
		return "", ErrInvalidCredentials
	}

	return acc.role, nil
}

// ListRestaurants returns a snapshot of all restaurants with their menus.
func (b *Backend) ListRestaurants(_ context.Context) []models.Restaurant {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]models.Restaurant, 0, len(b.restaurants))
	for _, r := range b.restaurants {
		result = append(result, snapshot(r))
	}
	return result
}

// RestaurantOf returns the restaurant owned by the admin emailID.
func (b *Backend) RestaurantOf(_ context.Context, emailID string) (models.Restaurant, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r, ok := b.owners[key(emailID)]
	if !ok {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	return snapshot(r), nil
}

// CreateRestaurant registers an admin account together with its restaurant.
// Both the email ID and the restaurant name must be unused.
func (b *Backend) CreateRestaurant(ctx context.Context, req models.RegistrationRequest) error {
	if req.Role != models.RoleAdmin {
		return fmt.Errorf("%w: role must be %s", ErrInvalidData, models.RoleAdmin)
	}

	hash, err := b.prepare(ctx, req)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, taken := b.accounts[key(req.EmailID)]; taken {
		return ErrRestaurantAlreadyExists
	}
	if b.findRestaurant(req.Name) != nil {
		return ErrRestaurantAlreadyExists
	}

	r := &models.Restaurant{
		Name:        req.Name,
		EmailID:     req.EmailID,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		FoodList:    []models.FoodItem{},
	}
	b.accounts[key(req.EmailID)] = account{name: req.Name, role: models.RoleAdmin, passwordHash: hash}
	b.owners[key(req.EmailID)] = r
	b.restaurants = append(b.restaurants, r)

	return nil
}

// RegisterCustomer registers a customer account.
func (b *Backend) RegisterCustomer(ctx context.Context, req models.RegistrationRequest) error {
	if req.Role != models.RoleCustomer {
		return fmt.Errorf("%w: role must be %s", ErrInvalidData, models.RoleCustomer)
	}

	hash, err := b.prepare(ctx, req)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, taken := b.accounts[key(req.EmailID)]; taken {
		return ErrCustomerAlreadyExists
	}
	b.accounts[key(req.EmailID)] = account{name: req.Name, role: models.RoleCustomer, passwordHash: hash}

	return nil
}

// prepare validates req and hashes its password outside the lock.
func (b *Backend) prepare(ctx context.Context, req models.RegistrationRequest) (string, error) {
	if err := b.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	hash, err := b.hasher.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}
	return hash, nil
}

// ListFoods returns the menu of the restaurant called name. Names match
// case-insensitively.
func (b *Backend) ListFoods(_ context.Context, name string) ([]models.FoodItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r := b.findRestaurant(name)
	if r == nil {
		return nil, ErrRestaurantNotFound
	}
	return slices.Clone(r.FoodList), nil
}

// AddFood appends item to the menu of the restaurant owned by emailID.
func (b *Backend) AddFood(_ context.Context, emailID string, item models.FoodItem) error {
	if strings.TrimSpace(item.ItemName) == "" {
		return fmt.Errorf("%w: empty item name", ErrInvalidData)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.owners[key(emailID)]
	if !ok {
		return ErrAccountIsNotARestaurant
	}
	if indexOfFood(r.FoodList, item.ItemName) >= 0 {
		return ErrFoodAlreadyExists
	}
	r.FoodList = append(r.FoodList, item)

	return nil
}

// DeleteFood removes itemName from the menu of the restaurant owned by
// emailID. Favorites pointing at the item are kept.
func (b *Backend) DeleteFood(_ context.Context, emailID, itemName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.owners[key(emailID)]
	if !ok {
		return ErrAccountIsNotARestaurant
	}

	i := indexOfFood(r.FoodList, itemName)
	if i < 0 {
		return ErrFoodNotFound
	}
	r.FoodList = slices.Delete(r.FoodList, i, i+1)

	return nil
}

// AddToFavorites adds foodName to the favorites of customer emailID. The
// food must exist on some menu. Adding a favorite twice is a no-op.
func (b *Backend) AddToFavorites(_ context.Context, emailID, foodName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.accounts[key(emailID)]
	if !ok || acc.role != models.RoleCustomer {
		return ErrAccountIsNotACustomer
	}

	found := false
	for _, r := range b.restaurants {
		if indexOfFood(r.FoodList, foodName) >= 0 {
			found = true
			break
		}
	}
	if !found {
		return ErrFoodNotFound
	}

	k := key(emailID)
	if !slices.Contains(b.favorites[k], foodName) {
		b.favorites[k] = append(b.favorites[k], foodName)
	}

	return nil
}

// Favorites returns the favorite food names of customer emailID.
func (b *Backend) Favorites(_ context.Context, emailID string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.favorites[key(emailID)])
}

func (b *Backend) findRestaurant(name string) *models.Restaurant {
	name = strings.TrimSpace(name)
	for _, r := range b.restaurants {
		if strings.EqualFold(r.Name, name) {
			return r
		}
	}
	return nil
}

func indexOfFood(foods []models.FoodItem, itemName string) int {
	return slices.IndexFunc(foods, func(f models.FoodItem) bool {
		return f.ItemName == itemName
	})
}

func snapshot(r *models.Restaurant) models.Restaurant {
	c := *r
	c.FoodList = slices.Clone(r.FoodList)
	return c
}
