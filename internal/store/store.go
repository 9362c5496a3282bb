// Package store provides the key-value persistence layer for memos.
package store

import (
	"context"
	"sort"
	"sync"
)

// Record keys. They match the keys the browser version of the app used, so
// exported localStorage dumps import unchanged.
const (
	KeyActive   = "memos"
	KeyArchived = "archivedMemos"
	KeyTheme    = "theme"
)

// Record is a stored value together with its write metadata.
type Record struct {
	Key       string `json:"key"`
	Value     string `json:"-"`
	Rev       string `json:"rev"`
	UpdatedAt string `json:"updated_at"`
}

// KV defines the durable key-value storage interface.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key, value string) error

	// Records lists metadata for every stored key.
	Records(ctx context.Context) ([]Record, error)

	// Close closes the store.
	Close() error
}

// MemKV is an in-memory KV, used by tests and ephemeral sessions.
type MemKV struct {
	mu   sync.Mutex
	data map[string]string
	revs map[string]int
}

// NewMemKV returns an empty MemKV.
func NewMemKV() *MemKV {
	return &MemKV{data: map[string]string{}, revs: map[string]int{}}
}

func (m *MemKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.revs[key]++
	return nil
}

// Writes returns how many times key has been written.
func (m *MemKV) Writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revs[key]
}

func (m *MemKV) Records(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Record
	for k, v := range m.data {
		out = append(out, Record{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *MemKV) Close() error { return nil }
