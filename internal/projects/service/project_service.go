package service

import (
	"context"
	"log"

	"github.com/atelier-works/portfolio-backend/internal/cache"
	"github.com/atelier-works/portfolio-backend/internal/projects/domain"
	"github.com/atelier-works/portfolio-backend/internal/projects/repository"
	"github.com/atelier-works/portfolio-backend/internal/store"
)

const listCacheKey = "projects:list"

// ProjectService handles project listing and creation on top of the
// repository. The cache is optional; nil disables it.
type ProjectService struct {
	repo  *repository.Repo
	cache *cache.Cache
}

func NewProjectService(repo *repository.Repo, c *cache.Cache) *ProjectService {
	return &ProjectService{
		repo:  repo,
		cache: c,
	}
}

// List returns all projects, newest year first. The bootstrap portfolio
// is seeded on first call against an empty collection. Ordering is
// best-effort: one unparseable year abandons sorting and the store's
// retrieval order is kept.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	var cached []domain.Project
	if hit, err := s.cache.GetJSON(ctx, listCacheKey, &cached); err != nil {
		log.Printf("[warn] operation=list_projects message=cache read failed: %v", err)
	} else if hit {
		return cached, nil
	}

	if err := s.repo.EnsureSeeded(ctx); err != nil {
		return nil, err
	}

	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sortByYearDesc(docs)

	out := make([]domain.Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.FromDocument(store.Serialize(d)))
	}

	if err := s.cache.SetJSON(ctx, listCacheKey, out); err != nil {
		log.Printf("[warn] operation=list_projects message=cache write failed: %v", err)
	}
	return out, nil
}

// Create persists a validated project payload and echoes the stored
// record back through the codec. The listing cache is invalidated so the
// new project shows up on the next list.
func (s *ProjectService) Create(ctx context.Context, in domain.ProjectIn) (domain.Project, error) {
	created, err := s.repo.Create(ctx, in.Document())
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		log.Printf("[warn] operation=create_project message=cache invalidation failed: %v", err)
	}
	return domain.FromDocument(store.Serialize(created)), nil
}
