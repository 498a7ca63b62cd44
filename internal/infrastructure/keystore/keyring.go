// Package keystore stores provider API keys in the OS keychain.
package keystore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/textact/textact/internal/ports"
)

// serviceName identifies textact entries in the OS keychain.
const serviceName = "textact"

// ErrKeyNotFound reports that no key is stored for a provider.
var ErrKeyNotFound = errors.New("no API key stored for provider")

// Keyring reads and writes API keys through the OS keychain: Keychain on
// macOS, Secret Service on Linux, Credential Manager on Windows.
type Keyring struct {
	service string
}

// NewKeyring builds the keychain-backed store.
func NewKeyring() *Keyring {
	return &Keyring{service: serviceName}
}

func (k *Keyring) Set(provider, key string) error {
	name := normalizeProvider(provider)
	if name == "" {
		return fmt.Errorf("provider name is required")
	}
	if key == "" {
		return fmt.Errorf("refusing to store an empty key for %q", name)
	}
	return keyring.Set(k.service, name, key)
}

func (k *Keyring) Get(provider string) (string, error) {
	key, err := keyring.Get(k.service, normalizeProvider(provider))
	if err == nil {
		return key, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrKeyNotFound
	}
	return "", err
}

func (k *Keyring) Delete(provider string) error {
	err := keyring.Delete(k.service, normalizeProvider(provider))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrKeyNotFound
	}
	return err
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

var _ ports.KeyStore = (*Keyring)(nil)
