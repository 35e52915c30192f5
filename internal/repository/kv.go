package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/serenity/internal/error_values"
)

// MemoryKV keeps everything in process memory. Used for local runs and tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", errorvalues.ErrKeyNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) SetIfAbsent(_ context.Context, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value
	return true, nil
}

func (m *MemoryKV) SetMany(_ context.Context, pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range pairs {
		m.data[k] = v
	}
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0)
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryKV) Ping(context.Context) error {
	return nil
}

// Namespaced is a view over a store that prefixes every key with "<ns>:".
type Namespaced struct {
	store  KVStoreI
	prefix string
}

func NewNamespaced(store KVStoreI, ns string) *Namespaced {
	return &Namespaced{store: store, prefix: ns + ":"}
}

func (n *Namespaced) Get(ctx context.Context, key string) (string, error) {
	return n.store.Get(ctx, n.prefix+key)
}

func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.store.Set(ctx, n.prefix+key, value)
}

func (n *Namespaced) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	return n.store.SetIfAbsent(ctx, n.prefix+key, value)
}

func (n *Namespaced) SetMany(ctx context.Context, pairs map[string]string) error {
	prefixed := make(map[string]string, len(pairs))
	for k, v := range pairs {
		prefixed[n.prefix+k] = v
	}
	return n.store.SetMany(ctx, prefixed)
}

func (n *Namespaced) Remove(ctx context.Context, key string) error {
	return n.store.Remove(ctx, n.prefix+key)
}

// Keys returns keys relative to the namespace.
func (n *Namespaced) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := n.store.Keys(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, n.prefix)
	}
	return keys, nil
}

func (n *Namespaced) Ping(ctx context.Context) error {
	return n.store.Ping(ctx)
}

// LoadJSON decodes the value under key into dst.
// found is false when the key is absent or its value is malformed; err is set only in the latter
// case and on backend failures, so callers can log it and fall back to a default.
func LoadJSON(ctx context.Context, kv KVStoreI, key string, dst any) (found bool, err error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading %q: %w", key, err)
	}
	if err = sonic.ConfigStd.UnmarshalFromString(raw, dst); err != nil {
		return false, fmt.Errorf("decoding %q: %w", key, err)
	}
	return true, nil
}

func EncodeJSON(v any) (string, error) {
	return sonic.ConfigStd.MarshalToString(v)
}

func SaveJSON(ctx context.Context, kv KVStoreI, key string, v any) error {
	raw, err := EncodeJSON(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	if err = kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

// LoadBool reads a "true"/"false" flag. Anything else reads as false.
func LoadBool(ctx context.Context, kv KVStoreI, key string) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading %q: %w", key, err)
	}
	return raw == "true", nil
}

func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func sortedKeys(pairs map[string]string) []string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
