package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

// Collection is the document collection holding portfolio projects.
const Collection = "projects"

// Repo provides persistence operations for projects on top of the
// document store gateway. A nil gateway is a valid state meaning the
// store is not configured.
type Repo struct {
	gw store.Gateway
}

func NewRepo(gw store.Gateway) *Repo {
	return &Repo{gw: gw}
}

// EnsureSeeded inserts the bootstrap portfolio exactly once: if and only
// if the collection is empty, the four fixed records are written, each
// stamped with its own creation instant. Without a configured store this
// is a no-op.
//
// The emptiness check and the inserts are not atomic; concurrent cold
// starts can seed twice. Accepted as a benign idempotency gap rather than
// guarded with locking.
func (r *Repo) EnsureSeeded(ctx context.Context) error {
	if r.gw == nil {
		return nil
	}

	count, err := r.gw.Count(ctx, Collection)
	if err != nil {
		return fmt.Errorf("count %s: %w", Collection, err)
	}
	if count != 0 {
		return nil
	}

	for _, doc := range seedProjects() {
		now := time.Now().UTC()
		doc["created_at"] = now
		doc["updated_at"] = now
		if _, err := r.gw.Insert(ctx, Collection, doc); err != nil {
			return fmt.Errorf("seed %s: %w", Collection, err)
		}
	}
	log.Printf("[info] operation=seed_projects message=seeded %d bootstrap projects", len(seedProjects()))
	return nil
}

// FindAll returns every stored project document in the store's native
// retrieval order. An unconfigured store yields an empty slice.
func (r *Repo) FindAll(ctx context.Context) ([]store.Document, error) {
	if r.gw == nil {
		return []store.Document{}, nil
	}
	return r.gw.FindAll(ctx, Collection)
}

// Create stamps both timestamps with one instant, inserts the document,
// then reads it back by the store-assigned identifier. Some drivers do
// not return the full inserted document, so the point lookup is the only
// reliable echo. A lookup miss after a successful insert is a store
// inconsistency, surfaced as store.ErrInconsistent.
func (r *Repo) Create(ctx context.Context, doc store.Document) (store.Document, error) {
	if r.gw == nil {
		return nil, store.ErrUnavailable
	}

	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	id, err := r.gw.Insert(ctx, Collection, doc)
	if err != nil {
		return nil, err
	}

	created, err := r.gw.FindByID(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: collection=%s id=%v", store.ErrInconsistent, Collection, id)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}
