package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen. Read from PORT.
	Port string `mapstructure:"port" env:"PORT" default:"3000"`
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// ReadTimeoutSeconds bounds reading a full request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"10"`
	// WriteTimeoutSeconds bounds writing a full response.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"10"`
	// Swagger enables the /swagger/* documentation routes.
	Swagger bool `mapstructure:"swagger" default:"true"`
}

// DefaultPort is used when no port is configured.
const DefaultPort = "3000"

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = DefaultPort
	}
	return c.Host + ":" + port
}

// ReadTimeout returns the read timeout, zero meaning unlimited.
func (c Config) ReadTimeout() time.Duration {
	return seconds(c.ReadTimeoutSeconds)
}

// WriteTimeout returns the write timeout, zero meaning unlimited.
func (c Config) WriteTimeout() time.Duration {
	return seconds(c.WriteTimeoutSeconds)
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
