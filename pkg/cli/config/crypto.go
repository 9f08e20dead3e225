package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/utils/crypto"
	"github.com/urfave/cli/v3"
)

// Crypto holds the key used to encrypt workspace tokens at rest
type Crypto struct {
	EncryptionKey string
}

// Flags returns CLI flags for Crypto configuration
func (c *Crypto) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "encryption-key",
			Usage:       "Secret used to encrypt Slack access tokens in Firestore",
			Category:    "Firestore",
			Sources:     cli.EnvVars("ATODEYOMU_ENCRYPTION_KEY"),
			Destination: &c.EncryptionKey,
		},
	}
}

// Configure returns the token cipher, or nil when no key is set
func (c *Crypto) Configure() (interfaces.TokenCipher, error) {
	if c.EncryptionKey == "" {
		return nil, nil
	}

	cipher, err := crypto.NewJWECipher(c.EncryptionKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure token cipher")
	}
	return cipher, nil
}

// LogValue returns structured log value
func (c Crypto) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_encryption_key", c.EncryptionKey != ""),
	)
}
