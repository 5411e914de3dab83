// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-foodie/models"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "Secret1!"

type seedRestaurant struct {
	registration models.RegistrationRequest
	menu         []models.FoodItem
}

var demoRestaurants = []seedRestaurant{
	{
		registration: models.RegistrationRequest{
			Name:        "Pizza Place",
			EmailID:     "owner@pizza.io",
			Address:     "1 Main St",
			PhoneNumber: "9876543210",
		},
		menu: []models.FoodItem{
			{ItemName: "Margherita", Description: "Tomato, mozzarella, basil", Price: 8.5, Category: "Pizza"},
			{ItemName: "Pepperoni", Description: "Spicy salami", Price: 9.9, Category: "Pizza"},
			{ItemName: "Tiramisu", Price: 4.2, Category: "Dessert"},
		},
	},
	{
		registration: models.RegistrationRequest{
			Name:        "Curry House",
			EmailID:     "chef@curry.io",
			Address:     "22 Spice Rd",
			PhoneNumber: "8123456789",
		},
		menu: []models.FoodItem{
			{ItemName: "Butter Chicken", Price: 11, Category: "Main"},
			{ItemName: "Paneer Tikka", Price: 9.5, Category: "Starter"},
			{ItemName: "Mango Lassi", Price: 3, Category: "Drinks"},
		},
	},
	{
		registration: models.RegistrationRequest{
			Name:        "Noodle Bar",
			EmailID:     "hello@noodle.io",
			Address:     "5 Harbour Way",
			PhoneNumber: "7000000001",
		},
		menu: []models.FoodItem{
			{ItemName: "Ramen", Price: 10, Category: "Soup"},
			{ItemName: "Gyoza", Price: 5.5, Category: "Starter"},
		},
	},
}

var demoCustomers = []models.RegistrationRequest{
	{
		Name:        "Jane Doe",
		EmailID:     "jane@mail.io",
		Address:     "9 Elm St",
		PhoneNumber: "9000000000",
	},
}

// Seed fills b with demo restaurants, menus and customers. All accounts use
// [DemoPassword].
func Seed(ctx context.Context, b *Backend) error {
	for _, r := range demoRestaurants {
		req := r.registration
		req.Password = DemoPassword
		req.Role = models.RoleAdmin

		if err := b.CreateRestaurant(ctx, req); err != nil {
			return fmt.Errorf("seed restaurant %q: %w", req.Name, err)
		}
		for _, item := range r.menu {
			if err := b.AddFood(ctx, req.EmailID, item); err != nil {
				return fmt.Errorf("seed food %q: %w", item.ItemName, err)
			}
		}
	}

	for _, c := range demoCustomers {
		c.Password = DemoPassword
		c.Role = models.RoleCustomer

		if err := b.RegisterCustomer(ctx, c); err != nil {
			return fmt.Errorf("seed customer %q: %w", c.EmailID, err)
		}
	}

	return nil
}
