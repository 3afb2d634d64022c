package api

import (
	"os"
	"strconv"
)

// LoadConfig reads client configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WEEKGRID_API"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("WEEKGRID_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WEEKGRID_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WEEKGRID_INCLUDE_GOOGLE"); v != "" {
		cfg.IncludeGoogle, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WEEKGRID_INCLUDE_OUTLOOK"); v != "" {
		cfg.IncludeOutlook, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WEEKGRID_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("WEEKGRID_DEVICE"); v != "" {
		cfg.Device = v
	}

	return cfg
}
