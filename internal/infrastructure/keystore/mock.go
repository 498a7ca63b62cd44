package keystore

import "github.com/textact/textact/internal/ports"

// Mock is an in-memory key store for tests.
type Mock struct {
	keys map[string]string
}

// NewMock builds an empty in-memory store.
func NewMock() *Mock {
	return &Mock{keys: make(map[string]string)}
}

func (m *Mock) Set(provider, key string) error {
	m.keys[normalizeProvider(provider)] = key
	return nil
}

func (m *Mock) Get(provider string) (string, error) {
	key, ok := m.keys[normalizeProvider(provider)]
	if !ok {
		return "", ErrKeyNotFound
	}
	return key, nil
}

func (m *Mock) Delete(provider string) error {
	name := normalizeProvider(provider)
	if _, ok := m.keys[name]; !ok {
		return ErrKeyNotFound
	}
	delete(m.keys, name)
	return nil
}

var _ ports.KeyStore = (*Mock)(nil)
