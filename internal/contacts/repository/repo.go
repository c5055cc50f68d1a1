package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

// Collection is the document collection holding contact submissions.
const Collection = "contacts"

// Repo provides persistence operations for contact submissions. A nil
// gateway means the store is not configured; writes then fail with
// store.ErrUnavailable.
type Repo struct {
	gw store.Gateway
}

func NewRepo(gw store.Gateway) *Repo {
	return &Repo{gw: gw}
}

// Create stamps both timestamps with one instant, inserts the document
// and reads it back by the store-assigned identifier. A lookup miss
// after a successful insert surfaces as store.ErrInconsistent.
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
