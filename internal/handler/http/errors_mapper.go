// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-foodie/internal/app"
	"github.com/MKhiriev/go-foodie/internal/devserver"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrInvalidJSON:                       {http.StatusBadRequest, app.MsgInvalidDataProvided},
	devserver.ErrInvalidData:             {http.StatusBadRequest, app.MsgInvalidDataProvided},
	devserver.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidCredentials},
	devserver.ErrRestaurantAlreadyExists: {http.StatusConflict, app.MsgRestaurantAlreadyExists},
	devserver.ErrCustomerAlreadyExists:   {http.StatusConflict, app.MsgCustomerAlreadyExists},
	devserver.ErrRestaurantNotFound:      {http.StatusNotFound, app.MsgRestaurantNotFound},
	devserver.ErrFoodNotFound:            {http.StatusNotFound, app.MsgFoodNotFound},
	devserver.ErrAccountIsNotARestaurant: {http.StatusForbidden, app.MsgNotAnAdmin},
	devserver.ErrAccountIsNotACustomer:   {http.StatusForbidden, app.MsgNotACustomer},
	ErrNoClaimsInContext:                 {http.StatusUnauthorized, app.MsgTokenIsInvalid},
}

// responseFromError returns the status and the envelope message for err.
// Unknown errors are 500 with a generic message.
func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
