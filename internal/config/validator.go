package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port is required")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", c.Port)
	}

	if strings.TrimSpace(c.CatalogDir) == "" {
		return fmt.Errorf("catalog dir is required")
	}
	if strings.TrimSpace(c.ServiceDatabasePath) == "" {
		return fmt.Errorf("service database path is required")
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		return fmt.Errorf("export dir is required")
	}

	if strings.TrimSpace(c.LoginUser) == "" || c.LoginPassword == "" {
		return fmt.Errorf("login credentials are required")
	}

	if c.ExportRatePerSec <= 0 {
		return fmt.Errorf("export rate must be positive, got %v", c.ExportRatePerSec)
	}
	if c.ExportBurst < 1 {
		return fmt.Errorf("export burst must be at least 1, got %d", c.ExportBurst)
	}

	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max open conns must be at least 1, got %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 || c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max idle conns must be between 0 and max open conns, got %d", c.MaxIdleConns)
	}

	return nil
}
