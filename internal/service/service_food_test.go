// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/mock"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFoodSvc(t *testing.T, role models.Role) (FoodService, *mock.MockServerAdapter, *session.Session) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sess := session.New()
	if role != "" {
		sess.Populate(models.StoredSession{Token: "tok", Role: role})
	}
	return NewFoodService(mockAdapter, sess, logger.Nop()), mockAdapter, sess
}

func TestFoodService_List(t *testing.T) {
	svc, mockAdapter, _ := newTestFoodSvc(t, "")
	foods := []models.FoodItem{{ItemName: "Margherita", Price: 9.5}}
	mockAdapter.EXPECT().ListFoods(gomock.Any(), "Pizza Place").Return(foods, nil)

	got, err := svc.List(context.Background(), "Pizza Place")
	require.NoError(t, err)
	assert.Equal(t, foods, got)
}

func TestFoodService_PendingDelete(t *testing.T) {
	t.Run("admin with request", func(t *testing.T) {
		svc, _, sess := newTestFoodSvc(t, models.RoleAdmin)
		svc.RequestDelete("Margherita")

		assert.Equal(t, "true", sess.Flag(session.FlagDelete))
		item, ok := svc.PendingDelete()
		assert.True(t, ok)
		assert.Equal(t, "Margherita", item)
	})

	t.Run("customer never has pending delete", func(t *testing.T) {
		svc, _, _ := newTestFoodSvc(t, models.RoleCustomer)
		svc.RequestDelete("Margherita")

		_, ok := svc.PendingDelete()
		assert.False(t, ok)
	})

	t.Run("cancel clears flags", func(t *testing.T) {
		svc, _, sess := newTestFoodSvc(t, models.RoleAdmin)
		svc.RequestDelete("Margherita")
		svc.CancelDelete()

		_, ok := svc.PendingDelete()
		assert.False(t, ok)
		assert.Empty(t, sess.Flag(session.FlagItemName))
	})
}

func TestFoodService_Delete(t *testing.T) {
	t.Run("success clears flags", func(t *testing.T) {
		svc, mockAdapter, sess := newTestFoodSvc(t, models.RoleAdmin)
		svc.RequestDelete("Margherita")
		mockAdapter.EXPECT().DeleteFood(gomock.Any(), "Margherita", "tok").Return(nil)

		require.NoError(t, svc.Delete(context.Background()))
		assert.Empty(t, sess.Flag(session.FlagDelete))
		assert.Empty(t, sess.Flag(session.FlagItemName))
	})

	t.Run("failure clears flags too", func(t *testing.T) {
		svc, mockAdapter, sess := newTestFoodSvc(t, models.RoleAdmin)
		svc.RequestDelete("Margherita")
		mockAdapter.EXPECT().DeleteFood(gomock.Any(), "Margherita", "tok").
			Return(adapter.NewHTTPError(http.StatusNotFound, app.MsgFoodNotFound, ""))

		err := svc.Delete(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, sess.Flag(session.FlagDelete))
	})

	t.Run("nothing pending", func(t *testing.T) {
		svc, _, _ := newTestFoodSvc(t, models.RoleAdmin)
		assert.ErrorIs(t, svc.Delete(context.Background()), ErrNoPendingDelete)
	})

	t.Run("no token", func(t *testing.T) {
		svc, _, sess := newTestFoodSvc(t, "")
		svc.RequestDelete("Margherita")

		assert.ErrorIs(t, svc.Delete(context.Background()), ErrNoSessionToken)
		assert.Empty(t, sess.Flag(session.FlagDelete))
	})
}
