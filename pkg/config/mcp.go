package config

import (
	"fmt"
	"strings"
)

// MCP transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// MCPConfig selects how the MCP server is exposed.
type MCPConfig struct {
	// Transport is "stdio" (default, subprocess mode) or "http"
	// (streamable HTTP endpoint).
	Transport string `koanf:"transport"`
}

// String returns a string representation of the MCP configuration.
func (c *MCPConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- MCP ---\n")
	b.WriteString(fmt.Sprintf("  transport: %s\n", c.Transport))
	return b.String()
}

func (c *MCPConfig) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
		return nil
	default:
		return fmt.Errorf("invalid MCP transport: %q", c.Transport)
	}
}
