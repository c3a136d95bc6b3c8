// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package config

import (
	"os"
	"strconv"
)

// defaultMaxFileSize bounds uploads when MAX_FILE_SIZE is unset.
const defaultMaxFileSize = 50 * 1024 * 1024 // 50 MiB

// Config holds the compression service configuration.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string
	// Environment selects gin's mode; "production" disables debug output.
	Environment string
	// MaxFileSize caps uploaded payloads, in bytes.
	MaxFileSize int64
}

// Load reads configuration from the environment, falling back to defaults:
// PORT (8080), APP_ENV (development) and MAX_FILE_SIZE (50 MiB).
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		MaxFileSize: getEnvInt64("MAX_FILE_SIZE", defaultMaxFileSize),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt64 gets an integer environment variable, returning the default
// when unset or unparsable.
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
