// Package config provides configuration management for the service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
//   - Server: HTTP port (PORT), host and timeouts
//   - Log: Logging level, format and output
//   - Vuln: switches for the intentionally vulnerable routes
//
// Defaults come from the `default` struct tag. Nested keys map to upper-case
// environment variables joined by underscores (log.level -> LOG_LEVEL). A field
// may name an extra variable with the `env` tag, which is how server.port reads PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
