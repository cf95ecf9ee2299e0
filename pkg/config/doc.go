// Package config loads typed configuration from environment variables.
//
// Every package that needs settings declares its own Config struct with caarlos0/env
// tags (PG_*, REDIS_*, SESSION_*, COOKIE_*, TOTP_*, HTTP_*) and the binary loads them
// with Load or MustLoad. Values from a local .env file are merged in through godotenv
// for development.
package config
