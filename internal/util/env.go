package util

import "os"

// Getenv returns the named environment variable, or defaultValue if it is
// unset or empty
func Getenv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
