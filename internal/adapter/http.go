// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathLogin             = "/api/v1/auth/login"
	pathRestaurants       = "/api/v1/restaurants"
	pathCurrentRestaurant = "/api/v1/restaurants/current"
	pathRestaurantFoods   = "/api/v1/restaurants/{name}/foods"
	pathCustomers         = "/api/v1/customers"
	pathFood              = "/api/v1/foods/{itemName}"
	pathFavorite          = "/api/v1/customers/favorites/{foodName}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter]. The address
// may omit the scheme, in which case http is assumed. Redirects are not
// followed: they surface as [ErrRedirect].
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. POST /api/v1/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post(pathLogin)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return result, nil
}

// ListRestaurants implements [ServerAdapter]. GET /api/v1/restaurants.
func (h *httpServerAdapter) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	resp, err := h.request(ctx).
		SetResult(&restaurants).
		Get(pathRestaurants)
	if err != nil {
		return nil, fmt.Errorf("list restaurants request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return restaurants, nil
}

// GetCurrentRestaurant implements [ServerAdapter].
// GET /api/v1/restaurants/current with the bearer token.
func (h *httpServerAdapter) GetCurrentRestaurant(ctx context.Context, token string) (models.Restaurant, error) {
	var restaurant models.Restaurant

	resp, err := h.authedRequest(ctx, token).
		SetResult(&restaurant).
		Get(pathCurrentRestaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("current restaurant request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Restaurant{}, err
	}

	return restaurant, nil
}

// CreateRestaurant implements [ServerAdapter]. POST /api/v1/restaurants.
func (h *httpServerAdapter) CreateRestaurant(ctx context.Context, req models.RegistrationRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post(pathRestaurants)
	if err != nil {
		return fmt.Errorf("create restaurant request: %w", err)
	}

	return mapHTTPError(resp)
}

// RegisterCustomer implements [ServerAdapter]. POST /api/v1/customers.
func (h *httpServerAdapter) RegisterCustomer(ctx context.Context, req models.RegistrationRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post(pathCustomers)
	if err != nil {
		return fmt.Errorf("register customer request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListFoods implements [ServerAdapter]. GET /api/v1/restaurants/{name}/foods.
func (h *httpServerAdapter) ListFoods(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	var foods []models.FoodItem

	resp, err := h.request(ctx).
		SetPathParam("name", restaurantID).
		SetResult(&foods).
		Get(pathRestaurantFoods)
	if err != nil {
		return nil, fmt.Errorf("list foods request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return foods, nil
}

// DeleteFood implements [ServerAdapter]. DELETE /api/v1/foods/{itemName}.
func (h *httpServerAdapter) DeleteFood(ctx context.Context, itemName, token string) error {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("itemName", itemName).
		Delete(pathFood)
	if err != nil {
		return fmt.Errorf("delete food request: %w", err)
	}

	return mapHTTPError(resp)
}

// AddToFavorites implements [ServerAdapter].
// POST /api/v1/customers/favorites/{foodName}.
func (h *httpServerAdapter) AddToFavorites(ctx context.Context, foodName, token string) error {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("foodName", foodName).
		Post(pathFavorite)
	if err != nil {
		return fmt.Errorf("add to favorites request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.request(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	} else {
		h.logger.Debug().Msg("authenticated request without token")
	}
	return req
}
