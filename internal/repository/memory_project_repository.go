package repository

import (
	"context"
	"sync"
	"time"

	"devboard/internal/model"
)

// MemoryProjectRepository is an in-process stand-in for a real backend.
// It keeps projects in insertion order, assigns ids from a counter that
// never reuses a value after deletes, and delays every call by a fixed
// interval to mimic network latency.
type MemoryProjectRepository struct {
	mu       sync.Mutex
	latency  time.Duration
	nextID   uint
	projects []model.Project
}

var _ ProjectRepositoryInterface = (*MemoryProjectRepository)(nil)

func NewMemoryProjectRepository(latency time.Duration, seed []model.Project) *MemoryProjectRepository {
	r := &MemoryProjectRepository{
		latency:  latency,
		nextID:   1,
		projects: append([]model.Project(nil), seed...),
	}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *MemoryProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]model.Project(nil), r.projects...), nil
}

func (r *MemoryProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.Slug == project.Slug {
			return ErrSlugTaken
		}
	}

	project.ID = r.nextID
	r.nextID++
	r.projects = append(r.projects, *project)
	return nil
}

func (r *MemoryProjectRepository) UpdateBySlug(ctx context.Context, slug string, patch model.ProjectPatch) (*model.Project, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].Slug == slug {
			r.projects[i].Apply(patch)
			updated := r.projects[i]
			return &updated, nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *MemoryProjectRepository) DeleteBySlug(ctx context.Context, slug string) error {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].Slug == slug {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return ErrProjectNotFound
}
