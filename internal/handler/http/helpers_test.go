package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/devserver"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/utils"
	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "foodie-test"
)

func testConfig() config.DevServerConfig {
	return config.DevServerConfig{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}
}

// fastHasher skips Argon2id to keep handler tests quick.
type fastHasher struct{}

func (fastHasher) Hash(password string) (string, error) { return "h$" + password, nil }
func (fastHasher) Verify(password, encoded string) bool { return encoded == "h$"+password }

func newSeededBackend(t *testing.T) *devserver.Backend {
	t.Helper()
	b := devserver.NewBackend(fastHasher{}, validators.NewRegistrationValidator())
	require.NoError(t, devserver.Seed(context.Background(), b))
	return b
}

func newTestServer(t *testing.T, backend Backend) *httptest.Server {
	t.Helper()
	h := NewHandler(backend, testConfig(), logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func tokenFor(t *testing.T, emailID string, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, emailID, role, time.Hour, testSignKey)
	require.NoError(t, err)
	return token
}

type apiResponse struct {
	status int
	header http.Header
	body   []byte
}

func (r apiResponse) errorMessage(t *testing.T) string {
	t.Helper()
	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(r.body, &envelope), "body: %s", r.body)
	return envelope.Error
}

func doRequest(t *testing.T, srv *httptest.Server, method, path string, body any, token string) apiResponse {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return apiResponse{status: resp.StatusCode, header: resp.Header, body: data}
}
