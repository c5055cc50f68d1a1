package service

import (
	"context"

	"github.com/atelier-works/portfolio-backend/internal/contacts/domain"
	"github.com/atelier-works/portfolio-backend/internal/contacts/repository"
	"github.com/atelier-works/portfolio-backend/internal/store"
)

// ContactService handles contact-form submissions.
type ContactService struct {
	repo *repository.Repo
}

func NewContactService(repo *repository.Repo) *ContactService {
	return &ContactService{repo: repo}
}

// Submit persists a validated contact payload and echoes the stored
// record back through the codec.
func (s *ContactService) Submit(ctx context.Context, in domain.ContactIn) (domain.Contact, error) {
	created, err := s.repo.Create(ctx, in.Document())
	if err != nil {
		return domain.Contact{}, err
	}
	return domain.FromDocument(store.Serialize(created)), nil
}
