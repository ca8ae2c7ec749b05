// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of the environment variable, or defaultValue when
// unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt returns the environment variable parsed as an integer, or
// defaultValue when unset or unparseable.
func GetEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetEnvAsSeconds returns the environment variable parsed as a number of
// seconds, or defaultValue when unset or unparseable.
//
// Example: GetEnvAsSeconds("DB_CONN_MAX_LIFETIME", 300*time.Second) with
// DB_CONN_MAX_LIFETIME=600 returns 600 * time.Second.
func GetEnvAsSeconds(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
