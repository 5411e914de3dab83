package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader correlates a client request with backend logs.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that stamps every request
// with a fresh X-Request-ID unless the caller already set one.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
func NewHTTPClient(ids *UUIDGenerator) *HTTPClient {
	client := resty.New()
	if ids != nil {
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) == "" {
				req.SetHeader(RequestIDHeader, ids.Generate())
			}
			return nil
		})
	}
	return &HTTPClient{Client: client}
}
