package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryGateway is an in-process Gateway used in tests and for local
// development without a MongoDB deployment. Native identifiers are UUID
// strings; retrieval order is insertion order.
type MemoryGateway struct {
	mu          sync.Mutex
	collections map[string][]Document
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{collections: make(map[string][]Document)}
}

func (g *MemoryGateway) Insert(_ context.Context, collection string, doc Document) (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	stored := copyDoc(doc)
	id := uuid.NewString()
	stored["_id"] = id
	g.collections[collection] = append(g.collections[collection], stored)
	return id, nil
}

func (g *MemoryGateway) FindByID(_ context.Context, collection string, id any) (Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, d := range g.collections[collection] {
		if d["_id"] == id {
			return copyDoc(d), nil
		}
	}
	return nil, ErrNotFound
}

func (g *MemoryGateway) FindAll(_ context.Context, collection string) ([]Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	docs := g.collections[collection]
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, copyDoc(d))
	}
	return out, nil
}

func (g *MemoryGateway) Count(_ context.Context, collection string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return int64(len(g.collections[collection])), nil
}

func (g *MemoryGateway) Collections(_ context.Context) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(g.collections))
	for name := range g.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func copyDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
