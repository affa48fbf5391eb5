package config

import (
	"fmt"
	"strings"
)

// Store driver names.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// StoreConfig selects and configures the product store backend.
type StoreConfig struct {
	// Driver is "memory" (default, create-drop semantics) or "sqlite"
	// (embedded persistent database).
	Driver string `koanf:"driver"`
	// DSN is the SQLite data source, typically a file path. Ignored by the
	// memory driver.
	DSN string `koanf:"dsn"`
	// Seed loads the sample inventory into an empty store at startup.
	Seed bool `koanf:"seed"`
}

// String returns a string representation of the store configuration.
func (c *StoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  driver: %s\n", c.Driver))
	b.WriteString(fmt.Sprintf("  dsn: %s\n", c.DSN))
	b.WriteString(fmt.Sprintf("  seed: %t\n", c.Seed))
	return b.String()
}

func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverMemory:
		return nil
	case StoreDriverSQLite:
		if c.DSN == "" {
			return fmt.Errorf("store DSN is required for the sqlite driver")
		}
		return nil
	default:
		return fmt.Errorf("invalid store driver: %q", c.Driver)
	}
}
