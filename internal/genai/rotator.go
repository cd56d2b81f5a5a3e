package genai

import (
	"errors"
	"sync"
)

// ErrNoKeys is returned when a rotator is created without any API keys.
var ErrNoKeys = errors.New("at least one API key is required")

// KeyRotator hands out API keys round-robin so request volume spreads across
// the configured keys. Safe for concurrent use.
type KeyRotator struct {
	mu     sync.Mutex
	keys   []string
	cursor int
}

// NewKeyRotator creates a rotator over the given keys.
func NewKeyRotator(keys []string) (*KeyRotator, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	return &KeyRotator{keys: keys}, nil
}

// Next returns the next key in rotation.
func (kr *KeyRotator) Next() string {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	key := kr.keys[kr.cursor]
	kr.cursor = (kr.cursor + 1) % len(kr.keys)
	return key
}
