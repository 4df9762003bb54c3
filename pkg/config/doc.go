// Package config loads application configuration from environment variables
// into annotated structs, wrapping github.com/joho/godotenv for optional .env
// files and github.com/caarlos0/env/v11 for tag-based parsing.
//
// # Usage
//
//	type AppConfig struct {
//	    LogFormat string `env:"APP_LOG_FORMAT" envDefault:"json"`
//	    APIKey    string `env:"APP_API_KEY,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without. Sentinel errors (ErrLoadingEnv,
// ErrParsingConfig, ErrNilPointer) can be matched with errors.Is.
package config
