package testutil

import (
	"os"
	"strconv"
	"testing"
)

// GetEnvOrSkip returns the value of key. Tests that talk to the real GitHub API call
// this so they are skipped on machines without credentials.
func GetEnvOrSkip(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set", key)
	}
	return value
}

// GetEnvInt64OrSkip is GetEnvOrSkip for numeric IDs such as a GitHub App ID. A value
// that is set but not a number fails the test instead of skipping it.
func GetEnvInt64OrSkip(t testing.TB, key string) int64 {
	t.Helper()
	raw := GetEnvOrSkip(t, key)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		t.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return n
}
