// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultDotEnvPath           = ".env"
	defaultAdapterAddress       = "localhost:8080"
	defaultRequestTimeout       = 15 * time.Second
	defaultDSN                  = "foodie.db"
	defaultSessionCheckInterval = time.Minute
	defaultLogPath              = "foodie.log"
	defaultLogLevel             = "info"
	defaultTokenIssuer          = "go-foodie-devserver"
	defaultTokenDuration        = time.Hour
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Workers: Workers{
			SessionCheckInterval: defaultSessionCheckInterval,
		},
		Log: Log{
			Path:  defaultLogPath,
			Level: defaultLogLevel,
		},
	}
}
