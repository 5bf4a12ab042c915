package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devboard/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

type ProjectRepositoryInterface interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	UpdateBySlug(ctx context.Context, slug string, patch model.ProjectPatch) (*model.Project, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List retrieves all projects in insertion order
func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	result := r.db.WithContext(ctx).Order("id").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// Create adds a new project; the slug must not be in use yet
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("slug = ?", project.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return r.db.WithContext(ctx).Create(project).Error
}

// UpdateBySlug merges the patch into the project identified by slug
func (r *ProjectRepository) UpdateBySlug(ctx context.Context, slug string, patch model.ProjectPatch) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	project.Apply(patch)
	if err := r.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteBySlug removes the project identified by slug. Tasks that
// reference the project are left in place: deletes do not cascade.
func (r *ProjectRepository) DeleteBySlug(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Delete(&model.Project{}, "slug = ?", slug)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
