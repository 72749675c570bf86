package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and local runs without MySQL
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
	seq         int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

func (m *MemoryStore) Insert(_ context.Context, collection string, data map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]Document)
	}
	id := uuid.NewString()
	m.seq++
	copied := copyMap(data)
	m.collections[collection][id] = Document{
		ID:        id,
		Data:      copied,
		CreatedAt: time.Now().Add(time.Duration(m.seq)), // strictly increasing insert order
	}
	return id, nil
}

func (m *MemoryStore) Get(_ context.Context, collection, id string) (map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	data := copyMap(doc.Data)
	data["id"] = doc.ID
	return data, nil
}

func (m *MemoryStore) GetAll(_ context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(collection, QueryOptions{}), nil
}

func (m *MemoryStore) Query(_ context.Context, collection, field string, value interface{}, opts QueryOptions) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []Document
	for _, doc := range m.sorted(collection, opts) {
		if fmt.Sprint(doc.Data[field]) == fmt.Sprint(value) {
			matched = append(matched, doc)
		}
	}
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

func (m *MemoryStore) Update(_ context.Context, collection, id string, patch map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range patch {
		doc.Data[k] = v
	}
	m.collections[collection][id] = doc
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], id)
	return nil
}

func (m *MemoryStore) sorted(collection string, opts QueryOptions) []Document {
	docs := make([]Document, 0, len(m.collections[collection]))
	for _, doc := range m.collections[collection] {
		data := copyMap(doc.Data)
		data["id"] = doc.ID
		docs = append(docs, Document{ID: doc.ID, Data: data, CreatedAt: doc.CreatedAt})
	}
	sort.Slice(docs, func(i, j int) bool {
		if opts.OrderByCreatedDesc {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs
}

func copyMap(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
