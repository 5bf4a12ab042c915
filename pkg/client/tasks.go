package client

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"devboard/internal/model"
)

// CreateTaskInput holds the fields for a new task.
type CreateTaskInput struct {
	ProjectID       uint     `json:"projectId"`
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	Assignees       []string `json:"assignees"`
	Labels          []string `json:"labels"`
	IsActive        *bool    `json:"is_active,omitempty"`
	IsRepetitive    bool     `json:"is_repetitive"`
	RepeatFrequency *string  `json:"repeat_frequency,omitempty"`
}

// FetchTasks retrieves every task across all projects.
func (c *Client) FetchTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&tasks).
		SetError(&APIError{}).
		Get("/tasks")
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error fetching tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

// FetchTasksByProject retrieves the full task collection and filters it
// here by projectId, preserving the server's ordering. The API has no
// by-project endpoint.
func (c *Client) FetchTasksByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	tasks, err := c.FetchTasks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ProjectID == projectID {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// CreateTask stores a new task and returns it with its assigned id.
func (c *Client) CreateTask(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	var task model.Task
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&task).
		SetError(&APIError{}).
		Post("/tasks")
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error creating task", zap.String("title", input.Title), zap.Error(err))
		return nil, err
	}
	return &task, nil
}

// UpdateTask sends only the patched fields for the task identified by id
// and returns the merged record.
func (c *Client) UpdateTask(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error) {
	var task model.Task
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&task).
		SetError(&APIError{}).
		Put("/tasks/" + strconv.FormatUint(uint64(id), 10))
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error updating task", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes the task identified by id.
func (c *Client) DeleteTask(ctx context.Context, id uint) (*DeleteResponse, error) {
	var ack DeleteResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ack).
		SetError(&APIError{}).
		Delete("/tasks/" + strconv.FormatUint(uint64(id), 10))
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error deleting task", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &ack, nil
}
