// Package config provides configuration loading, merging, and validation
// facilities for the go-foodie client and its development backend.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables (FOODIE_ prefix), optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetDevServerConfig] for the development backend.
package config
