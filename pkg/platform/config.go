package platform

import (
	"os"
	"strconv"
	"strings"

	apperrors "lca-metals/pkg/errors"
)

// DefaultPort is the conventional service port.
const DefaultPort = 8501

func GetEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func GetEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func GetEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return strings.ToLower(val) == "true" || val == "1"
	}
	return defaultVal
}

// ResolvePort reads and range-validates the PORT environment variable.
// Invalid or out-of-range values fall back to DefaultPort; the returned
// error describes why, for logging, and is always recoverable.
func ResolvePort() (int, error) {
	val, exists := os.LookupEnv("PORT")
	if !exists || val == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(val)
	if err != nil || port < 1 || port > 65535 {
		return DefaultPort, apperrors.NewInvalidPortError(val)
	}
	return port, nil
}
