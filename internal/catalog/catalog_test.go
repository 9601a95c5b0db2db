package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/repository"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/pkg/model"
)

func newTestCatalog(t *testing.T, datasetJSON []byte) (*Service, *repository.Repository) {
	t.Helper()
	repo := repository.New(store.NewMemory())
	svc, err := NewService(repo, datasetJSON)
	require.NoError(t, err)
	return svc, repo
}

func TestDatasetFallback(t *testing.T) {
	svc, _ := newTestCatalog(t, nil)
	jobs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, len(DefaultJobs()))
}

func TestDatasetParsing(t *testing.T) {
	data := []byte(`[{"id":"x1","title":"Backend Dev","company":"Acme","location":"Hà Nội"}]`)
	svc, _ := newTestCatalog(t, data)

	jobs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "x1", jobs[0].ID)

	_, err = NewService(repository.New(store.NewMemory()), []byte(`{broken`))
	assert.Error(t, err)
}

func TestPostAndListMergesLocalFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCatalog(t, nil)
	poster := model.Session{Email: "p@x.com", Role: model.RolePoster, Name: "Acme HR"}

	job, err := svc.Post(ctx, poster, PostInput{
		Title:       "Go Developer",
		Category:    "it",
		Location:    "Đà Nẵng",
		Description: []string{"Build services"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "p@x.com", job.PosterEmail)
	assert.Equal(t, "full-time", job.Type)

	jobs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ID, jobs[0].ID)

	found, err := svc.Find(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", found.Title)
}

func TestPostValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCatalog(t, nil)

	_, err := svc.Post(ctx, model.Session{Role: model.RoleSeeker}, PostInput{Title: "x", Category: "it", Description: []string{"d"}})
	assert.Error(t, err)

	poster := model.Session{Email: "p@x.com", Role: model.RolePoster}
	_, err = svc.Post(ctx, poster, PostInput{Category: "it", Description: []string{"d"}})
	assert.Error(t, err)
}

func TestDeleteOwnerOnly(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCatalog(t, nil)
	poster := model.Session{Email: "p@x.com", Role: model.RolePoster, Name: "Acme"}

	job, err := svc.Post(ctx, poster, PostInput{Title: "x", Category: "it", Description: []string{"d"}})
	require.NoError(t, err)

	err = svc.Delete(ctx, job.ID, "other@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, job.ID, "p@x.com"))
	_, err = svc.Find(ctx, job.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Dataset jobs cannot be deleted.
	err = svc.Delete(ctx, DefaultJobs()[0].ID, "hr@ravi.vn")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCatalog(t, nil)

	byKeyword, err := svc.Search(ctx, "sale", "")
	require.NoError(t, err)
	assert.NotEmpty(t, byKeyword)

	byLocation, err := svc.Search(ctx, "", "hồ chí minh")
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "hz-sale-002", byLocation[0].ID)

	none, err := svc.Search(ctx, "quantum", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPage(t *testing.T) {
	jobs := make([]model.Job, 12)
	for i := range jobs {
		jobs[i].ID = string(rune('a' + i))
	}

	first := Page(jobs, 1, 9)
	assert.Len(t, first, 9)
	second := Page(jobs, 2, 9)
	assert.Len(t, second, 3)
	assert.Empty(t, Page(jobs, 3, 9))
	assert.Len(t, Page(jobs, 0, 0), 9)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCatalog(t, nil)
	poster := model.Session{Email: "p@x.com", Role: model.RolePoster}

	_, err := svc.Post(ctx, poster, PostInput{Title: "x", Category: "it", Description: []string{"d"}})
	require.NoError(t, err)

	cats, err := svc.Categories(ctx, 6)
	require.NoError(t, err)
	// Both dataset jobs are sales, so sales outranks it.
	require.Len(t, cats, 2)
	assert.Equal(t, model.Category("sales"), cats[0])
}
