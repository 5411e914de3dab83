package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/handler"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/mock"
	"github.com/MKhiriev/go-foodie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testServerConfig(addr string) config.DevServerConfig {
	return config.DevServerConfig{
		HTTPAddress:    addr,
		RequestTimeout: time.Second,
		TokenSignKey:   "k",
		TokenIssuer:    "i",
		TokenDuration:  time.Hour,
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, testServerConfig(":0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, testServerConfig(":0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	backend := mock.NewMockBackend(gomock.NewController(t))
	backend.EXPECT().ListRestaurants(gomock.Any()).Return([]models.Restaurant{{Name: "Pizza Place"}}).AnyTimes()

	cfg := testServerConfig(freeAddress(t))
	handlers, err := handler.NewHandlers(backend, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/api/v1/restaurants")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + cfg.HTTPAddress + "/api/v1/restaurants")
	assert.Error(t, err, "server must not accept connections after shutdown")
}
