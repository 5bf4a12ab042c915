package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devboard/internal/model"
	"devboard/internal/repository"
)

type ProjectHandler struct {
	projectRepo repository.ProjectRepositoryInterface
}

func NewProjectHandler(projectRepo repository.ProjectRepositoryInterface) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

// ProjectRequest carries the fields for creating a project. The slug is
// derived from the name on the server, never supplied by the caller.
type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	ProjectURL  string `json:"project_url" binding:"omitempty,url"`
}

// GetAll returns every project
func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projectRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Create stores a new project and returns it with its assigned id
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := &model.Project{
		Name:        req.Name,
		Slug:        model.Slugify(req.Name),
		Description: req.Description,
		ProjectURL:  req.ProjectURL,
	}

	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "A project with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Update merges the supplied fields into the project identified by slug
func (h *ProjectHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var patch model.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projectRepo.UpdateBySlug(c.Request.Context(), slug, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete removes the project identified by slug
func (h *ProjectHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.projectRepo.DeleteBySlug(c.Request.Context(), slug); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
