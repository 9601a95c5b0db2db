// Package catalog merges the static job dataset with locally posted jobs and
// supplies the (jobId, jobTitle, posterEmail) snapshot an application freezes
// at apply time.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/repository"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// DefaultPageSize is the number of job cards shown per listing page.
const DefaultPageSize = 9

type Service struct {
	jobs    *repository.JobRepository
	dataset []model.Job
}

// NewService parses the static jobs dataset. Empty or missing data falls back
// to the built-in fixtures.
func NewService(repo *repository.Repository, datasetJSON []byte) (*Service, error) {
	dataset := DefaultJobs()
	if len(datasetJSON) > 0 {
		var parsed []model.Job
		if err := json.Unmarshal(datasetJSON, &parsed); err != nil {
			return nil, fmt.Errorf("parse jobs dataset: %w", err)
		}
		if len(parsed) > 0 {
			dataset = parsed
		}
	}
	return &Service{jobs: repo.Jobs, dataset: dataset}, nil
}

// List returns local postings first, then the dataset.
func (s *Service) List(ctx context.Context) ([]model.Job, error) {
	local, err := s.jobs.ListLocal(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Job, 0, len(local)+len(s.dataset))
	out = append(out, local...)
	out = append(out, s.dataset...)
	return out, nil
}

// Find returns the posting with the given id, or common.ErrNotFound.
func (s *Service) Find(ctx context.Context, id string) (*model.Job, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			j := all[i]
			return &j, nil
		}
	}
	return nil, common.ErrNotFound
}

// Search filters by keyword (title or company substring) and location
// substring, both case-insensitive.
func (s *Service) Search(ctx context.Context, keyword, location string) ([]model.Job, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	location = strings.ToLower(strings.TrimSpace(location))
	var out []model.Job
	for _, j := range all {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(j.Title), keyword) &&
			!strings.Contains(strings.ToLower(j.Company), keyword) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

// Page slices a result list. Pages are 1-based; out-of-range pages yield an
// empty slice.
func Page(jobs []model.Job, page, pageSize int) []model.Job {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(jobs) {
		return nil
	}
	end := start + pageSize
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}

// Categories counts dataset and local categories, most frequent first, for
// suggested-category chips.
func (s *Service) Categories(ctx context.Context, limit int) ([]model.Category, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	var order []string
	for _, j := range all {
		c := strings.TrimSpace(j.Category)
		if c == "" {
			continue
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if counts[order[j]] > counts[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	out := make([]model.Category, len(order))
	for i, c := range order {
		out[i] = model.Category(c)
	}
	return out, nil
}

// PostInput is the employer's job-post form.
type PostInput struct {
	Title        string
	Category     string
	Location     string
	Salary       string
	Type         string
	Cover        string
	Description  []string
	Requirements []string
	Benefits     []string
	ContactEmail string
}

// Post publishes a local job owned by the signed-in employer.
func (s *Service) Post(ctx context.Context, poster model.Session, in PostInput) (model.Job, error) {
	if poster.Role != model.RolePoster {
		return model.Job{}, fmt.Errorf("post job: only posters may publish")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Category) == "" || len(in.Description) == 0 {
		return model.Job{}, fmt.Errorf("post job: title, category and description are required")
	}
	jobType := strings.TrimSpace(in.Type)
	if jobType == "" {
		jobType = "full-time"
	}
	job := model.Job{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Company:      poster.Name,
		Location:     strings.TrimSpace(in.Location),
		Salary:       strings.TrimSpace(in.Salary),
		Type:         jobType,
		Category:     strings.TrimSpace(in.Category),
		PostedAt:     "just posted",
		Description:  in.Description,
		Requirements: in.Requirements,
		Benefits:     in.Benefits,
		Cover:        strings.TrimSpace(in.Cover),
		Contact:      &model.Contact{Name: poster.Name, Email: strings.TrimSpace(in.ContactEmail)},
		PosterEmail:  poster.Email,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return model.Job{}, err
	}
	return job, nil
}

// Delete removes a local posting owned by posterEmail.
func (s *Service) Delete(ctx context.Context, id, posterEmail string) error {
	return s.jobs.Delete(ctx, id, posterEmail)
}

// ListByPoster returns the postings an employer manages, local and dataset.
func (s *Service) ListByPoster(ctx context.Context, posterEmail string) ([]model.Job, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Job
	for _, j := range all {
		if j.OwnerEmail() == posterEmail {
			out = append(out, j)
		}
	}
	return out, nil
}
