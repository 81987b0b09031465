package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envSpec mirrors the subset of Config that can be sourced from the
// environment. Variables use the ROBLE_ prefix, e.g. ROBLE_BASE_URL.
type envSpec struct {
	BaseURL string        `envconfig:"BASE_URL" required:"true"`
	CodeURL string        `envconfig:"CODE_URL" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// FromEnv builds a Config from ROBLE_-prefixed environment variables.
func FromEnv() (Config, error) {
	var spec envSpec
	if err := envconfig.Process("roble", &spec); err != nil {
		return Config{}, err
	}
	return Config{
		BaseURL: spec.BaseURL,
		CodeURL: spec.CodeURL,
		Timeout: spec.Timeout,
	}, nil
}
