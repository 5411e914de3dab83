// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/mock"
	"github.com/MKhiriev/go-foodie/internal/service"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMenu = []models.FoodItem{
	{ItemName: "Margherita", Price: 9.5, Category: "pizza"},
	{ItemName: "Calzone", Price: 11, Category: "pizza"},
}

type foodFixture struct {
	model       *FoodModel
	foods       *mock.MockFoodService
	customers   *mock.MockCustomerService
	restaurants *mock.MockRestaurantService
	confirmer   *recordingConfirmer
}

func newFoodFixture(t *testing.T, role models.Role) foodFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sess := session.New()
	if role != "" {
		sess.Populate(models.StoredSession{Token: "tok", Role: role, EmailID: "someone@mail.com"})
	}

	f := foodFixture{
		foods:       mock.NewMockFoodService(ctrl),
		customers:   mock.NewMockCustomerService(ctrl),
		restaurants: mock.NewMockRestaurantService(ctrl),
		confirmer:   &recordingConfirmer{},
	}
	f.model = NewFoodModel(context.Background(), f.foods, f.customers, f.restaurants, sess, f.confirmer)
	return f
}

// openLoaded opens restaurant and delivers its menu without running commands.
func (f foodFixture) openLoaded(restaurant string, current models.Restaurant) {
	f.model.Update(openRestaurantMsg{name: restaurant})
	if current.Name != "" {
		f.model.Update(currentRestaurantMsg{restaurant: current})
	}
	f.model.Update(foodsLoadedMsg{restaurant: restaurant, foods: testMenu})
}

func TestFood_OpenLoadsMenuAndOwnRestaurant(t *testing.T) {
	f := newFoodFixture(t, models.RoleAdmin)
	f.foods.EXPECT().List(gomock.Any(), "Pizza Place").Return(testMenu, nil)
	f.restaurants.EXPECT().Current(gomock.Any()).Return(models.Restaurant{Name: "Pizza Place"}, nil)

	_, cmd := f.model.Update(openRestaurantMsg{name: "Pizza Place"})
	for _, msg := range collectMsgs(cmd) {
		f.model.Update(msg)
	}

	assert.False(t, f.model.loading)
	assert.Equal(t, testMenu, f.model.items)
	assert.True(t, f.model.canDelete())
	assert.Contains(t, f.model.View(), "d: delete")
}

func TestFood_OpenOwnRestaurant(t *testing.T) {
	f := newFoodFixture(t, models.RoleAdmin)
	f.restaurants.EXPECT().Current(gomock.Any()).Return(models.Restaurant{Name: "Pizza Place"}, nil)
	f.foods.EXPECT().List(gomock.Any(), "Pizza Place").Return(testMenu, nil)

	_, cmd := f.model.Update(openRestaurantMsg{})
	current, ok := findMsg[currentRestaurantMsg](collectMsgs(cmd))
	require.True(t, ok)

	_, cmd = f.model.Update(current)
	assert.Equal(t, "Pizza Place", f.model.restaurant)

	loaded, ok := findMsg[foodsLoadedMsg](collectMsgs(cmd))
	require.True(t, ok)
	f.model.Update(loaded)
	assert.Len(t, f.model.items, 2)
}

func TestFood_StaleMenuIgnored(t *testing.T) {
	f := newFoodFixture(t, models.RoleCustomer)
	f.model.Update(openRestaurantMsg{name: "Burger Hub"})

	f.model.Update(foodsLoadedMsg{restaurant: "Pizza Place", foods: testMenu})
	assert.Empty(t, f.model.items)
	assert.True(t, f.model.loading)
}

func TestFood_DeleteConfirmed(t *testing.T) {
	f := newFoodFixture(t, models.RoleAdmin)
	f.openLoaded("Pizza Place", models.Restaurant{Name: "Pizza Place"})
	f.confirmer.answer = true

	f.foods.EXPECT().RequestDelete("Margherita")
	_, cmd := f.model.Update(runeKey("d"))
	require.NotNil(t, cmd)
	assert.True(t, f.model.busy)

	gomock.InOrder(
		f.foods.EXPECT().PendingDelete().Return("Margherita", true),
		f.foods.EXPECT().Delete(gomock.Any()).Return(nil),
	)
	result, ok := cmd().(deleteFoodResultMsg)
	require.True(t, ok)
	assert.Equal(t, deleteFoodResultMsg{item: "Margherita"}, result)
	assert.Equal(t, []string{app.NoticeDeleteFoodConfirm}, f.confirmer.asked)

	f.foods.EXPECT().List(gomock.Any(), "Pizza Place").Return(testMenu[1:], nil)
	_, cmd = f.model.Update(result)
	f.model.Update(cmd())

	assert.False(t, f.model.busy)
	assert.Equal(t, testMenu[1:], f.model.items)
}

func TestFood_DeleteFailureStillReloads(t *testing.T) {
	f := newFoodFixture(t, models.RoleAdmin)
	f.openLoaded("Pizza Place", models.Restaurant{Name: "Pizza Place"})

	f.foods.EXPECT().List(gomock.Any(), "Pizza Place").Return(testMenu, nil)
	_, cmd := f.model.Update(deleteFoodResultMsg{item: "Margherita", err: service.ErrNotFound})
	require.NotNil(t, cmd)
	_, ok := cmd().(foodsLoadedMsg)
	assert.True(t, ok)
}

func TestFood_DeleteDeclined(t *testing.T) {
	f := newFoodFixture(t, models.RoleAdmin)
	f.openLoaded("Pizza Place", models.Restaurant{Name: "Pizza Place"})
	f.confirmer.answer = false

	f.foods.EXPECT().RequestDelete("Margherita")
	_, cmd := f.model.Update(runeKey("d"))
	require.NotNil(t, cmd)

	gomock.InOrder(
		f.foods.EXPECT().PendingDelete().Return("Margherita", true),
		f.foods.EXPECT().CancelDelete(),
	)
	result := cmd().(deleteFoodResultMsg)
	assert.True(t, result.cancelled)

	_, cmd = f.model.Update(result)
	assert.Nil(t, cmd, "a declined delete does not reload")
	assert.False(t, f.model.busy)
}

func TestFood_DeleteNotOffered(t *testing.T) {
	t.Run("customer", func(t *testing.T) {
		f := newFoodFixture(t, models.RoleCustomer)
		f.openLoaded("Pizza Place", models.Restaurant{})

		_, cmd := f.model.Update(runeKey("d"))
		assert.Nil(t, cmd)
		assert.NotContains(t, f.model.View(), "d: delete")
	})

	t.Run("admin of another restaurant", func(t *testing.T) {
		f := newFoodFixture(t, models.RoleAdmin)
		f.openLoaded("Pizza Place", models.Restaurant{Name: "Burger Hub"})

		_, cmd := f.model.Update(runeKey("d"))
		assert.Nil(t, cmd)
	})
}

func TestFood_AddToFavorites(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantNotice string
	}{
		{name: "added", wantNotice: app.NoticeFavoriteAdded},
		{name: "failed", err: fmt.Errorf("add to favorites: %w", service.ErrServerFailure), wantNotice: app.NoticeFavoriteFailed},
		{name: "no token is silent", err: service.ErrNoSessionToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFoodFixture(t, models.RoleCustomer)
			f.openLoaded("Pizza Place", models.Restaurant{})
			f.model.Update(runeKey("j"))

			f.customers.EXPECT().AddToFavorites(gomock.Any(), "Calzone").Return(tt.err)
			_, cmd := f.model.Update(runeKey("f"))
			require.NotNil(t, cmd)

			_, cmd = f.model.Update(cmd())
			if tt.wantNotice == "" {
				assert.Nil(t, cmd)
				return
			}
			notice, ok := findMsg[snackbarMsg](collectMsgs(cmd))
			require.True(t, ok)
			assert.Equal(t, tt.wantNotice, notice.message)
		})
	}
}

func TestFood_FavoritesOnlyForCustomers(t *testing.T) {
	f := newFoodFixture(t, models.RoleAdmin)
	f.openLoaded("Pizza Place", models.Restaurant{Name: "Pizza Place"})

	_, cmd := f.model.Update(runeKey("f"))
	assert.Nil(t, cmd)
}

func TestFood_Copy(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	f := newFoodFixture(t, "")
	f.openLoaded("Pizza Place", models.Restaurant{})

	_, cmd := f.model.Update(runeKey("c"))
	require.NotNil(t, cmd)
	_, cmd = f.model.Update(cmd())

	assert.Equal(t, "Margherita", copied)
	notice, ok := findMsg[snackbarMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf(app.NoticeCopied, "Margherita"), notice.message)

	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	_, cmd = f.model.Update(runeKey("c"))
	_, cmd = f.model.Update(cmd())
	notice, ok = findMsg[snackbarMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, app.NoticeCopyFailed, notice.message)
}

func TestFood_EscGoesHome(t *testing.T) {
	f := newFoodFixture(t, "")
	_, cmd := f.model.Update(escKey)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageHome}, cmd())
}
