package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devboard/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List retrieves all tasks in insertion order. Filtering by project
// happens on the client side, so there is no by-project query here.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Order("id").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Create adds a new task. The referenced project is not checked:
// tasks may point at projects that no longer exist.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.Normalize()
	return r.db.WithContext(ctx).Create(task).Error
}

// Update merges the patch into the task identified by id
func (r *TaskRepository) Update(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	task.Apply(patch)
	if err := r.db.WithContext(ctx).Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
