package crypto

import (
	"crypto/sha256"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwe"
	"github.com/m-mizutani/goerr/v2"
)

// JWECipher encrypts secrets as compact JWE (direct key agreement, A256GCM).
// The content key is the SHA-256 digest of the configured secret.
type JWECipher struct {
	key []byte
}

// NewJWECipher creates a cipher from a non-empty secret
func NewJWECipher(secret string) (*JWECipher, error) {
	if secret == "" {
		return nil, goerr.New("encryption key is empty")
	}
	sum := sha256.Sum256([]byte(secret))
	return &JWECipher{key: sum[:]}, nil
}

// Encrypt encrypts plain into a compact JWE
func (c *JWECipher) Encrypt(plain string) ([]byte, error) {
	encrypted, err := jwe.Encrypt([]byte(plain),
		jwe.WithKey(jwa.DIRECT, c.key),
		jwe.WithContentEncryption(jwa.A256GCM),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encrypt secret")
	}
	return encrypted, nil
}

// Decrypt decrypts data produced by Encrypt
func (c *JWECipher) Decrypt(data []byte) (string, error) {
	plain, err := jwe.Decrypt(data, jwe.WithKey(jwa.DIRECT, c.key))
	if err != nil {
		return "", goerr.Wrap(err, "failed to decrypt secret")
	}
	return string(plain), nil
}
