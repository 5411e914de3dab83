// Package http implements the REST transport of the development backend.
//
// It exposes route wiring, request handlers, and middleware for the
// /api/v1 contract the client speaks. Request IDs, access logging,
// compression and bearer authentication are handled in this package before
// requests reach the in-memory backend.
package http
