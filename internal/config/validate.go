package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if c.Occupancy.HistoryPageSize <= 0 {
		return fmt.Errorf("occupancy.history_page_size must be > 0 (got %d)", c.Occupancy.HistoryPageSize)
	}
	if c.Occupancy.MaxResidentsPerUnit <= 0 {
		return fmt.Errorf("occupancy.max_residents_per_unit must be > 0 (got %d)", c.Occupancy.MaxResidentsPerUnit)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}
