// Package config loads application configuration from environment variables
// into tagged structs, with optional .env file support for development.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small generic API. Each configuration type is parsed once per process and
// cached, so independent packages can load their own config structs without
// coordinating.
package config
