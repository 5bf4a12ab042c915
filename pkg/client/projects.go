package client

import (
	"context"

	"go.uber.org/zap"

	"devboard/internal/model"
)

// CreateProjectInput holds the fields for a new project. The server
// derives the slug from the name.
type CreateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ProjectURL  string `json:"project_url,omitempty"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// FetchProjects retrieves every project.
func (c *Client) FetchProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&projects).
		SetError(&APIError{}).
		Get("/projects")
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error fetching projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

// CreateProject stores a new project and returns it with its assigned id and slug.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	var project model.Project
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&project).
		SetError(&APIError{}).
		Post("/projects")
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error creating project", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	return &project, nil
}

// UpdateProject sends only the patched fields for the project identified
// by slug and returns the merged record.
func (c *Client) UpdateProject(ctx context.Context, slug string, patch model.ProjectPatch) (*model.Project, error) {
	var project model.Project
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&project).
		SetError(&APIError{}).
		Put("/projects/" + slug)
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error updating project", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes the project identified by slug.
func (c *Client) DeleteProject(ctx context.Context, slug string) (*DeleteResponse, error) {
	var ack DeleteResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ack).
		SetError(&APIError{}).
		Delete("/projects/" + slug)
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error deleting project", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &ack, nil
}
