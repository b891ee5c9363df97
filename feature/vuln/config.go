package vuln

// Config holds configuration for the intentionally vulnerable routes.
type Config struct {
	// Enabled loads /vuln-eval and /reflect.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// EscapeReflect HTML-escapes the /reflect message. Off by default so
	// dynamic scanners find the reflected input.
	EscapeReflect bool `mapstructure:"escape_reflect" default:"false"`
}
