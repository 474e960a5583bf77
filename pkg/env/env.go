// Package env reads raw process environment values. Most configuration
// flows through envconfig; this covers the few knobs read before the
// config struct is loaded, like the logger's service name.
package env

import "os"

// Get returns the value of key, or fallback when the variable is unset
// or blank.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
