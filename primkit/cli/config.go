package cli

import (
	"go-simpler.org/env"

	"github.com/pkg/errors"
)

// Config holds the settings read from the environment. Command line flags
// start from these values and override them.
type Config struct {
	LogLevel    string `env:"PRIMKIT_LOG_LEVEL" default:"warn" usage:"log level: trace debug info warn error"`
	LogJSON     bool   `env:"PRIMKIT_LOG_JSON" default:"false" usage:"write logs as JSON lines instead of console text"`
	Workers     int    `env:"PRIMKIT_WORKERS" default:"4" usage:"concurrent requests in batch mode"`
	StrictLowS  bool   `env:"PRIMKIT_STRICT_LOW_S" default:"false" usage:"reject signatures whose s is above half the group order"`
	Cipher      string `env:"PRIMKIT_AEAD_CIPHER" default:"aes-256-gcm" usage:"AEAD suite for aead-encrypt and aead-decrypt: aes-256-gcm or chacha20-poly1305"`
	MessageHash string `env:"PRIMKIT_MESSAGE_HASH" default:"sha256" usage:"prehash for ecdsa-sign-message and ecdsa-verify-message: sha256 or keccak256"`
}

// LoadConfig reads Config from the process environment, or from opts.Source
// when opts is not nil.
func LoadConfig(opts *env.Options) (Config, error) {
	var cfg Config
	if err := env.Load(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "load configuration")
	}
	return cfg, nil
}
