package repository

import (
	"context"
	"sync"
	"time"

	"devboard/internal/model"
)

// MemoryTaskRepository is the in-process task collection backing the
// mock API. Mutations key on the integer task id.
type MemoryTaskRepository struct {
	mu      sync.Mutex
	latency time.Duration
	nextID  uint
	tasks   []model.Task
}

var _ TaskRepositoryInterface = (*MemoryTaskRepository)(nil)

func NewMemoryTaskRepository(latency time.Duration, seed []model.Task) *MemoryTaskRepository {
	r := &MemoryTaskRepository{
		latency: latency,
		nextID:  1,
		tasks:   append([]model.Task(nil), seed...),
	}
	for _, t := range seed {
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *MemoryTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]model.Task(nil), r.tasks...), nil
}

func (r *MemoryTaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	task.Normalize()
	task.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *MemoryTaskRepository) Update(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Apply(patch)
			updated := r.tasks[i]
			return &updated, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id uint) error {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}
