// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"

	"github.com/catr-tool/catr/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the tool prefix with the given suffix.
// Example: HostEnvKey("PROFILE") returns "CATR_PROFILE".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("PROFILE") returns the value of CATR_PROFILE.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}
