package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// ControlPlane holds the connection settings of a live control plane used by integration tests.
type ControlPlane struct {
	RestAPIURL string
	APIKey     string
	Repository string
}

// ControlPlaneOrSkip reads TEST_CONTROL_PLANE_URL, TEST_CONTROL_PLANE_API_KEY and
// TEST_CONTROL_PLANE_REPOSITORY, skipping the test when any of them is missing.
func ControlPlaneOrSkip(t *testing.T) ControlPlane {
	t.Helper()
	return ControlPlane{
		RestAPIURL: GetEnvOrSkip(t, "TEST_CONTROL_PLANE_URL"),
		APIKey:     GetEnvOrSkip(t, "TEST_CONTROL_PLANE_API_KEY"),
		Repository: GetEnvOrSkip(t, "TEST_CONTROL_PLANE_REPOSITORY"),
	}
}
