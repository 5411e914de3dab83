package devserver

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainHasher keeps tests fast; Argon2id is covered in the crypto package.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "plain$" + password, nil }
func (plainHasher) Verify(password, encoded string) bool { return encoded == "plain$"+password }

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	return NewBackend(plainHasher{}, validators.NewRegistrationValidator())
}

func newSeededBackend(t *testing.T) *Backend {
	t.Helper()
	b := newTestBackend(t)
	require.NoError(t, Seed(context.Background(), b))
	return b
}

func restaurantRequest() models.RegistrationRequest {
	return models.RegistrationRequest{
		Name:        "Taco Town",
		EmailID:     "boss@taco.io",
		Password:    "Secret1!",
		Role:        models.RoleAdmin,
		Address:     "3 Market St",
		PhoneNumber: "9123456789",
	}
}

func TestLogin(t *testing.T) {
	b := newSeededBackend(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		emailID  string
		password string
		wantRole models.Role
		wantErr  error
	}{
		{name: "admin", emailID: "owner@pizza.io", password: DemoPassword, wantRole: models.RoleAdmin},
		{name: "customer", emailID: "jane@mail.io", password: DemoPassword, wantRole: models.RoleCustomer},
		{name: "email is case-insensitive", emailID: "  OWNER@pizza.io", password: DemoPassword, wantRole: models.RoleAdmin},
		{name: "wrong password", emailID: "owner@pizza.io", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown account", emailID: "ghost@mail.io", password: DemoPassword, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := b.Login(ctx, tt.emailID, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestCreateRestaurant(t *testing.T) {
	ctx := context.Background()

	t.Run("registers admin and restaurant", func(t *testing.T) {
		b := newTestBackend(t)
		require.NoError(t, b.CreateRestaurant(ctx, restaurantRequest()))

		list := b.ListRestaurants(ctx)
		require.Len(t, list, 1)
		assert.Equal(t, "Taco Town", list[0].Name)
		assert.Empty(t, list[0].FoodList)

		role, err := b.Login(ctx, "boss@taco.io", "Secret1!")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, role)

		own, err := b.RestaurantOf(ctx, "boss@taco.io")
		require.NoError(t, err)
		assert.Equal(t, "Taco Town", own.Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		b := newTestBackend(t)
		require.NoError(t, b.CreateRestaurant(ctx, restaurantRequest()))

		req := restaurantRequest()
		req.Name = "Other Place"
		assert.ErrorIs(t, b.CreateRestaurant(ctx, req), ErrRestaurantAlreadyExists)
	})

	t.Run("duplicate name", func(t *testing.T) {
		b := newTestBackend(t)
		require.NoError(t, b.CreateRestaurant(ctx, restaurantRequest()))

		req := restaurantRequest()
		req.Name = "taco town"
		req.EmailID = "other@taco.io"
		assert.ErrorIs(t, b.CreateRestaurant(ctx, req), ErrRestaurantAlreadyExists)
	})

	t.Run("customer role rejected", func(t *testing.T) {
		req := restaurantRequest()
		req.Role = models.RoleCustomer
		assert.ErrorIs(t, newTestBackend(t).CreateRestaurant(ctx, req), ErrInvalidData)
	})

	t.Run("invalid payload", func(t *testing.T) {
		req := restaurantRequest()
		req.PhoneNumber = "1234567890"

		err := newTestBackend(t).CreateRestaurant(ctx, req)
		require.ErrorIs(t, err, ErrInvalidData)

		var fieldErrs validators.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.True(t, fieldErrs.Field(validators.FieldPhone).Has(validators.KeyFirstDigit))
	})
}

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()
	b := newSeededBackend(t)

	req := models.RegistrationRequest{
		Name:        "John Roe",
		EmailID:     "john@mail.io",
		Password:    "Secret1!",
		Role:        models.RoleCustomer,
		Address:     "1 Road",
		PhoneNumber: "8000000000",
	}
	require.NoError(t, b.RegisterCustomer(ctx, req))
	assert.ErrorIs(t, b.RegisterCustomer(ctx, req), ErrCustomerAlreadyExists)

	req.EmailID = "owner@pizza.io"
	assert.ErrorIs(t, b.RegisterCustomer(ctx, req), ErrCustomerAlreadyExists, "email taken by an admin")

	req.EmailID = "new@mail.io"
	req.Role = models.RoleAdmin
	assert.ErrorIs(t, b.RegisterCustomer(ctx, req), ErrInvalidData)
}

func TestListFoods(t *testing.T) {
	b := newSeededBackend(t)
	ctx := context.Background()

	foods, err := b.ListFoods(ctx, "pizza place")
	require.NoError(t, err)
	assert.Len(t, foods, 3)

	_, err = b.ListFoods(ctx, "Nowhere")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestListRestaurants_ReturnsSnapshot(t *testing.T) {
	b := newSeededBackend(t)
	ctx := context.Background()

	list := b.ListRestaurants(ctx)
	require.Len(t, list, 3)
	list[0].FoodList[0].ItemName = "changed"
	list[0].Name = "changed"

	again := b.ListRestaurants(ctx)
	assert.Equal(t, "Pizza Place", again[0].Name)
	assert.Equal(t, "Margherita", again[0].FoodList[0].ItemName)
}

func TestDeleteFood(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes own item", func(t *testing.T) {
		b := newSeededBackend(t)
		require.NoError(t, b.DeleteFood(ctx, "owner@pizza.io", "Pepperoni"))

		foods, err := b.ListFoods(ctx, "Pizza Place")
		require.NoError(t, err)
		assert.Len(t, foods, 2)
		for _, f := range foods {
			assert.NotEqual(t, "Pepperoni", f.ItemName)
		}
	})

	t.Run("item of another restaurant", func(t *testing.T) {
		b := newSeededBackend(t)
		assert.ErrorIs(t, b.DeleteFood(ctx, "owner@pizza.io", "Ramen"), ErrFoodNotFound)
	})

	t.Run("customer has no restaurant", func(t *testing.T) {
		b := newSeededBackend(t)
		assert.ErrorIs(t, b.DeleteFood(ctx, "jane@mail.io", "Ramen"), ErrAccountIsNotARestaurant)
	})
}

func TestAddFood(t *testing.T) {
	b := newSeededBackend(t)
	ctx := context.Background()

	assert.ErrorIs(t, b.AddFood(ctx, "owner@pizza.io", models.FoodItem{ItemName: "Margherita"}), ErrFoodAlreadyExists)
	assert.ErrorIs(t, b.AddFood(ctx, "owner@pizza.io", models.FoodItem{ItemName: " "}), ErrInvalidData)
	assert.ErrorIs(t, b.AddFood(ctx, "jane@mail.io", models.FoodItem{ItemName: "Soup"}), ErrAccountIsNotARestaurant)
	assert.NoError(t, b.AddFood(ctx, "owner@pizza.io", models.FoodItem{ItemName: "Calzone", Price: 9}))
}

func TestAddToFavorites(t *testing.T) {
	b := newSeededBackend(t)
	ctx := context.Background()

	require.NoError(t, b.AddToFavorites(ctx, "jane@mail.io", "Ramen"))
	require.NoError(t, b.AddToFavorites(ctx, "jane@mail.io", "Ramen"))
	require.NoError(t, b.AddToFavorites(ctx, "jane@mail.io", "Margherita"))
	assert.Equal(t, []string{"Ramen", "Margherita"}, b.Favorites(ctx, "jane@mail.io"))

	assert.ErrorIs(t, b.AddToFavorites(ctx, "jane@mail.io", "Sushi"), ErrFoodNotFound)
	assert.ErrorIs(t, b.AddToFavorites(ctx, "owner@pizza.io", "Ramen"), ErrAccountIsNotACustomer)
	assert.Empty(t, b.Favorites(ctx, "nobody@mail.io"))
}

func TestSeed_Twice(t *testing.T) {
	b := newSeededBackend(t)
	assert.ErrorIs(t, Seed(context.Background(), b), ErrRestaurantAlreadyExists)
}

func TestBackend_ConcurrentAccess(t *testing.T) {
	b := newSeededBackend(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = b.ListRestaurants(ctx)
			_, _ = b.ListFoods(ctx, "Curry House")
		}()
		go func() {
			defer wg.Done()
			_ = b.AddToFavorites(ctx, "jane@mail.io", "Gyoza")
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"Gyoza"}, b.Favorites(ctx, "jane@mail.io"))
}
