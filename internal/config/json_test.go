// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeJSON(t, `{
		"app": {"token_sign_key": "k", "token_issuer": "i", "token_duration": "90m"},
		"adapter": {"http_address": "localhost:9090", "request_timeout": "3s"},
		"server": {"http_address": "localhost:9191", "request_timeout": 1000000000},
		"storage": {"db": {"dsn": "/tmp/foodie.db"}},
		"workers": {"session_check_interval": "2m"},
		"log": {"path": "/tmp/foodie.log", "level": "error"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "i", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:9191", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/foodie.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SessionCheckInterval)
	assert.Equal(t, "/tmp/foodie.log", cfg.Log.Path)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := parseJSON(writeJSON(t, `{`))
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseJSON(writeJSON(t, `{"adapter": {"request_timeout": "later"}}`))
		assert.Error(t, err)
	})

	t.Run("duration of wrong type", func(t *testing.T) {
		_, err := parseJSON(writeJSON(t, `{"adapter": {"request_timeout": true}}`))
		assert.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
