package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-works/portfolio-backend/internal/cache"
	"github.com/atelier-works/portfolio-backend/internal/projects/domain"
	"github.com/atelier-works/portfolio-backend/internal/projects/repository"
	"github.com/atelier-works/portfolio-backend/internal/store"
)

func newService(t *testing.T) (*ProjectService, *store.MemoryGateway) {
	t.Helper()
	gw := store.NewMemoryGateway()
	return NewProjectService(repository.NewRepo(gw), nil), gw
}

func TestList_SeedsAndSorts(t *testing.T) {
	ctx := context.Background()
	svc, gw := newService(t)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 4)

	years := make([]string, len(projects))
	for i, p := range projects {
		years[i] = p.Year
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Image)
	}
	assert.Equal(t, []string{"2023", "2022", "2021", "2020"}, years)

	// Listing again must not seed a second time.
	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 4)

	n, err := gw.Count(ctx, repository.Collection)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestList_UnparseableYearKeepsRetrievalOrder(t *testing.T) {
	ctx := context.Background()
	svc, gw := newService(t)

	titles := []string{"a", "b", "c", "d"}
	years := []string{"2020", "N/A", "2023", "2022"}
	for i := range titles {
		_, err := gw.Insert(ctx, repository.Collection, store.Document{
			"title": titles[i], "image": "img", "year": years[i],
		})
		require.NoError(t, err)
	}

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 4)
	for i, p := range projects {
		assert.Equal(t, titles[i], p.Title)
	}
}

func TestList_WithoutStore(t *testing.T) {
	svc := NewProjectService(repository.NewRepo(nil), nil)

	projects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestCreate_RoundTripsThroughStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	p, err := svc.Create(ctx, domain.ProjectIn{
		Title:    "Hillside Pavilion",
		Image:    "https://example.com/pavilion.jpg",
		Location: "Sonoma, CA",
		Year:     "2024",
		Tags:     []string{"Pavilion"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Hillside Pavilion", p.Title)
	assert.Equal(t, "Sonoma, CA", p.Location)
	assert.Equal(t, "2024", p.Year)
	assert.Equal(t, []string{"Pavilion"}, p.Tags)
}

func TestList_CacheRoundTrip(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	listCache := cache.New(client, time.Minute)

	gw := store.NewMemoryGateway()
	svc := NewProjectService(repository.NewRepo(gw), listCache)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.True(t, mr.Exists(listCacheKey))

	// A cache hit bypasses the store entirely.
	cached, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	// Creation invalidates, so the new project appears on the next list.
	_, err = svc.Create(ctx, domain.ProjectIn{Title: "New", Image: "img", Year: "2025"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(listCacheKey))

	refreshed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, refreshed, 5)
	assert.Equal(t, "New", refreshed[0].Title)
}
