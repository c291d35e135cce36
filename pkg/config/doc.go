// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for dotenv files. A .env file in the working
// directory is loaded once per process when present; further files can be
// named with WithEnvFiles.
//
//	type Settings struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("GDS_")); err != nil {
//		return err
//	}
//
// Service is the shared configuration of the gdsvalidate binary, read from
// GDS_* variables by LoadService.
package config
