package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store used by tests and local tooling. All reads
// and writes copy documents, so callers never share map references with the
// store, and ApplyAll swaps the whole batch under one lock.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]Document)}
}

func (m *Memory) Snapshot(_ context.Context, collection string) (map[string]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]Document, len(m.collections[collection]))
	for id, doc := range m.collections[collection] {
		out[id] = copyDocument(doc)
	}
	return out, nil
}

func (m *Memory) ApplyAll(_ context.Context, collection string, docs map[string]Document) error {
	if len(docs) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collections[collection]
	if col == nil {
		col = make(map[string]Document)
		m.collections[collection] = col
	}
	for id, doc := range docs {
		col[id] = copyDocument(doc)
	}
	return nil
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyDocument(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
