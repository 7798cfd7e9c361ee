// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     without overriding variables that are already set.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type for the lifetime of the process.
//   - MustLoad and MustLoadEnv panic on failure for configuration that the
//     process cannot start without.
//   - ResetCache and ForceReloadConfig drop cached values, which is handy in
//     tests that change the environment.
//
// # Usage
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg fcm.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrNilPointer     – nil pointer passed to Load.
//   - ErrLoadingEnvFile – a .env file could not be read.
package config
