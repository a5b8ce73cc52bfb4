package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Hub.validate(); err != nil {
		return fmt.Errorf("hub: %w", err)
	}

	return nil
}

func (h *HubConfig) validate() error {
	if h.LookbackWindow <= 0 {
		return fmt.Errorf("lookback_window must be > 0 (got %v)", h.LookbackWindow)
	}
	if h.SweepConcurrency < 1 {
		return fmt.Errorf("sweep_concurrency must be >= 1 (got %d)", h.SweepConcurrency)
	}
	if h.DismissPerMinute < 0 {
		return fmt.Errorf("dismiss_per_minute must be >= 0 (got %d)", h.DismissPerMinute)
	}
	return nil
}
