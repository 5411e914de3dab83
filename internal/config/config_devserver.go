// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the configuration of the in-memory development backend.
type DevServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration

	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	Log ClientLog
}

// GetDevServerConfig builds and validates the development backend view of
// the merged structured configuration.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}
	return devCfg, devCfg.validate()
}
