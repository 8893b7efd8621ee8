package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// RPC client configuration struct
// --------------------------------------------------------------------------

const (
	// DefaultTimeoutSecond bounds connect and response when no timeout is configured
	DefaultTimeoutSecond = 10
	// DefaultLogLevel keeps stderr quiet unless something goes wrong
	DefaultLogLevel = "warn"
)

// ClientConfig holds everything needed for a single request/response exchange
type ClientConfig struct {
	// Server address
	Host string
	Port int

	// Protocol version (1, 2 or 3) and the type of message to request
	Version int
	MsgType MessageType

	// TimeoutSecond bounds connecting and waiting for the response, 0 disables the bound
	TimeoutSecond int

	// Logging configuration
	LogLevel string
}

// Endpoint returns the host:port address of the server
func (c *ClientConfig) Endpoint() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Timeout returns the configured timeout as a duration
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecond) * time.Second
}

// Validate checks the configuration before any connection is attempted
func (c *ClientConfig) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("%w: host must not be empty", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port must be between 1 and 65535, got %d", ErrInvalidConfig, c.Port)
	}
	if c.Version < 1 || c.Version > 3 {
		return fmt.Errorf("%w: %d (expected 1, 2 or 3)", ErrUnsupportedVersion, c.Version)
	}
	if _, err := ParseMessageType(int(c.MsgType)); err != nil {
		return err
	}
	if c.TimeoutSecond < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %d", ErrInvalidConfig, c.TimeoutSecond)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// Connection
	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint())
	if c.TimeoutSecond > 0 {
		addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	} else {
		addField("Timeout", "none")
	}

	// Request
	addSection("Request")
	addField("Protocol Version", strconv.Itoa(c.Version))
	addField("Message Type", fmt.Sprintf("%d (%s)", c.MsgType, c.MsgType))

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
