package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/pass-vault/internal/config"
)

type staticKeyProvider struct {
	key Key
}

// NewStaticKeyProvider returns a [KeyProvider] that always hands out key.
func NewStaticKeyProvider(key Key) KeyProvider {
	return &staticKeyProvider{key: key}
}

func (p *staticKeyProvider) Key() (Key, error) {
	if p.key.IsZero() {
		return Key{}, fmt.Errorf("%w: no key configured", ErrInvalidKey)
	}
	return p.key, nil
}

// configKeyProvider decodes the deployment secret on first use and caches the
// result for the life of the process.
type configKeyProvider struct {
	load func() (Key, error)
}

// NewConfigKeyProvider returns a [KeyProvider] reading cfg.EncryptionKey in
// the encoding named by cfg.KeyEncoding. Passphrases are stretched with
// keyChain.DeriveKey and the Base64 cfg.KDFSalt.
func NewConfigKeyProvider(cfg config.Crypto, keyChain KeyChainService) KeyProvider {
	return &configKeyProvider{
		load: sync.OnceValues(func() (Key, error) {
			return decodeKey(cfg, keyChain)
		}),
	}
}

func (p *configKeyProvider) Key() (Key, error) {
	return p.load()
}

func decodeKey(cfg config.Crypto, keyChain KeyChainService) (Key, error) {
	secret := strings.TrimSpace(cfg.EncryptionKey)
	if secret == "" {
		return Key{}, fmt.Errorf("%w: %s%s is not set", ErrInvalidKey, config.EnvPrefix, "CRYPTO_ENCRYPTION_KEY")
	}

	switch cfg.KeyEncoding {
	case config.KeyEncodingBase64, "":
		raw, err := base64.StdEncoding.DecodeString(secret)
		if err != nil {
			return Key{}, fmt.Errorf("%w: key is not valid base64", ErrInvalidKey)
		}
		defer Zero(raw)
		return NewKey(raw)

	case config.KeyEncodingHex:
		raw, err := hex.DecodeString(secret)
		if err != nil {
			return Key{}, fmt.Errorf("%w: key is not valid hex", ErrInvalidKey)
		}
		defer Zero(raw)
		return NewKey(raw)

	case config.KeyEncodingPassphrase:
		salt, err := base64.StdEncoding.DecodeString(strings.TrimSpace(cfg.KDFSalt))
		if err != nil {
			return Key{}, fmt.Errorf("%w: kdf salt is not valid base64", ErrInvalidKey)
		}
		return keyChain.DeriveKey(cfg.EncryptionKey, salt)

	default:
		return Key{}, fmt.Errorf("%w: unknown key encoding %q", ErrInvalidKey, cfg.KeyEncoding)
	}
}
