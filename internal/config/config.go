package config

import (
	"strings"

	"inventory-mcp/pkg/config"
	"inventory-mcp/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	MCP        config.MCPConfig      `koanf:"mcp"`
	Store      config.StoreConfig    `koanf:"store"`
	HTTPServer config.HTTPConfig     `koanf:"server"`
	Log        config.LogConfig      `koanf:"log"`
	Shutdown   config.ShutdownConfig `koanf:"shutdown"`
}

// Defaults returns the built-in configuration: a seeded in-memory store served
// over stdio, so the binary works out of the box as an MCP subprocess.
func Defaults() map[string]any {
	return map[string]any{
		"mcp.transport":             config.TransportStdio,
		"store.driver":              config.StoreDriverMemory,
		"store.dsn":                 "inventory.db",
		"store.seed":                true,
		"log.level":                 "info",
		"server.port":               8080,
		"server.maxHeaderBytes":     1 << 20,
		"server.timeout.read":       "5s",
		"server.timeout.write":      "120s",
		"server.timeout.idle":       "60s",
		"server.timeout.readHeader": "2s",
		"shutdown.timeout":          "10s",
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.MCP.String())
	b.WriteString(c.Store.String())
	b.WriteString(c.Log.String())
	if c.MCP.Transport == config.TransportHTTP {
		b.WriteString(c.HTTPServer.String())
		b.WriteString(c.Shutdown.String())
	}
	return b.String()
}

// Validate checks if the configuration values are valid. HTTP server settings
// are only checked when the HTTP transport is selected.
func (c *Config) Validate() error {
	if err := c.MCP.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.MCP.Transport == config.TransportHTTP {
		if err := c.HTTPServer.Validate(); err != nil {
			return err
		}
		if err := c.Shutdown.Validate(); err != nil {
			return err
		}
	}
	return nil
}
