package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devboard/internal/model"
	"devboard/internal/repository"
)

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// TaskRequest carries the fields for creating a task
type TaskRequest struct {
	ProjectID       uint     `json:"projectId" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Body            string   `json:"body" binding:"required"`
	Assignees       []string `json:"assignees"`
	Labels          []string `json:"labels"`
	IsActive        *bool    `json:"is_active"`
	IsRepetitive    bool     `json:"is_repetitive"`
	RepeatFrequency *string  `json:"repeat_frequency" binding:"omitempty,oneof=Weekly Fortnightly Monthly"`
}

// GetAll returns every task across all projects
func (h *TaskHandler) GetAll(c *gin.Context) {
	tasks, err := h.taskRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Create stores a new task and returns it with its assigned id.
// The referenced project is not verified to exist.
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// New tasks default to active unless the caller says otherwise.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	task := &model.Task{
		ProjectID:       req.ProjectID,
		Title:           req.Title,
		Body:            req.Body,
		Assignees:       req.Assignees,
		Labels:          req.Labels,
		IsActive:        isActive,
		IsRepetitive:    req.IsRepetitive,
		RepeatFrequency: req.RepeatFrequency,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Update merges the supplied fields into the task identified by id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := parseTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes the task identified by id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := parseTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseTaskID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
