// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the client and the
// development backend.
//
// Msg* constants are the backend's error texts, sent in the {"error": ...}
// envelope and matched by the client's service layer. Notice* constants are
// the texts shown to the user in the snackbar line.
package app

// Backend error messages.
const (
	// MsgRestaurantAlreadyExists is returned when a restaurant is registered
	// with an email ID that is already taken.
	MsgRestaurantAlreadyExists = "Restaurant already exists"

	// MsgCustomerAlreadyExists is returned when a customer is registered with
	// an email ID that is already taken.
	MsgCustomerAlreadyExists = "customer already exists"

	MsgInvalidDataProvided = "invalid data provided"
	MsgInvalidCredentials  = "invalid email/password"
	MsgTokenIsInvalid      = "token is expired or invalid"
	MsgNotAnAdmin          = "only restaurant admins can do this"
	MsgNotACustomer        = "only customers can do this"
	MsgRestaurantNotFound  = "restaurant not found"
	MsgFoodNotFound        = "food item not found"
	MsgInternalServerError = "internal server error"
)

// User notices.
const (
	NoticeRestaurantAdded       = "Restaurant added successfully"
	NoticeRestaurantExists      = "Restaurant with the same email ID already exists. Please use a different email ID"
	NoticeRestaurantFailed      = "Failed to add Restaurant. Please try again later"
	NoticeCustomerAdded         = "Customer added successfully"
	NoticeCustomerExists        = "Customer with the same email ID already exists. Please use a different email ID."
	NoticeCustomerFailed        = "Failed to add customer. Please try again later."
	NoticeFavoriteAdded         = "Food item added to view Cart"
	NoticeFavoriteFailed        = "Failed to add to view cart. Please try again later"
	NoticeDeleteFoodConfirm     = "Are you sure you want to delete this food?"
	NoticeLoggedIn              = "Logged in as %s (%s)"
	NoticeLoggedOut             = "Logged out"
	NoticeLoginFailed           = "Invalid email or password"
	NoticeSessionExpired        = "Session expired. Please log in again"
	NoticeRestaurantsRedirected = "The restaurant list moved to %s"
	NoticeRestaurantsLoadFailed = "Failed to load restaurants. Please try again later"
	NoticeFoodsLoadFailed       = "Failed to load the menu. Please try again later"
	NoticeCopied                = "Copied %q to clipboard"
	NoticeCopyFailed            = "Clipboard is not available"
	NoticeServerUnavailable     = "Server is unavailable. Please try again later"
	NoticeLoginRequired         = "Please log in first"
)
