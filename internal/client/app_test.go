package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/mock"
	"github.com/MKhiriev/go-foodie/internal/service"
	"github.com/MKhiriev/go-foodie/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, interval time.Duration) (*App, *mock.MockAuthService, *mock.MockUI) {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	ui := mock.NewMockUI(ctrl)
	services := &service.ClientServices{
		AuthService:      auth,
		SessionExpiryJob: service.NewSessionExpiryJob(auth, logger.Nop()),
	}

	app, err := NewApp(services, ui, config.ClientWorkers{SessionCheckInterval: interval}, logger.Nop())
	require.NoError(t, err)
	return app, auth, ui
}

func TestNewApp_MissingDependencies(t *testing.T) {
	ui := mock.NewMockUI(gomock.NewController(t))

	_, err := NewApp(nil, ui, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewApp(&service.ClientServices{}, ui, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		restored   bool
		restoreErr error
		uiErr      error
		wantErr    bool
	}{
		{name: "restored session, normal quit", restored: true},
		{name: "no session", restored: false},
		{name: "restore failure is not fatal", restoreErr: errors.New("disk")},
		{name: "ctrl+c is a normal exit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, auth, ui := newTestApp(t, time.Hour)

			gomock.InOrder(
				auth.EXPECT().RestoreSession(gomock.Any()).Return(tt.restored, tt.restoreErr),
				ui.EXPECT().Run(gomock.Any()).Return(tt.uiErr),
			)

			err := app.Run(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApp_Run_ExpiredSessionNotifiesUI(t *testing.T) {
	app, auth, ui := newTestApp(t, 10*time.Millisecond)

	expired := make(chan struct{})

	auth.EXPECT().RestoreSession(gomock.Any()).Return(true, nil)
	auth.EXPECT().ClearExpired(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
	auth.EXPECT().ClearExpired(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	ui.EXPECT().SessionExpired().Do(func() { close(expired) })
	ui.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		select {
		case <-expired:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("session expiry was not reported")
		}
	})

	require.NoError(t, app.Run(context.Background()))
}
