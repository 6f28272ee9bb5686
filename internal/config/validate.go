package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Dictionary.BaseURL == "" {
		return fmt.Errorf("dictionary.base_url must not be empty")
	}
	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary.timeout must be > 0 (got %v)", c.Dictionary.Timeout)
	}

	if c.Cleanup.RetentionDays <= 0 {
		return fmt.Errorf("cleanup.retention_days must be > 0 (got %d)", c.Cleanup.RetentionDays)
	}

	return nil
}
