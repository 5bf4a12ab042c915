package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"devboard/internal/handler"
	"devboard/internal/model"
	"devboard/internal/repository"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	projects := args.Get(0)
	if projects == nil {
		return nil, args.Error(1)
	}
	return projects.([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateBySlug(ctx context.Context, slug string, patch model.ProjectPatch) (*model.Project, error) {
	args := m.Called(ctx, slug, patch)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) DeleteBySlug(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func setupProjectTest() (*gin.Engine, *MockProjectRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockProjectRepository)
	projectHandler := handler.NewProjectHandler(mockRepo)

	r.GET("/projects", projectHandler.GetAll)
	r.POST("/projects", projectHandler.Create)
	r.PUT("/projects/:slug", projectHandler.Update)
	r.DELETE("/projects/:slug", projectHandler.Delete)

	return r, mockRepo
}

func TestProjectGetAll(t *testing.T) {
	// Arrange
	router, mockRepo := setupProjectTest()

	mockRepo.On("List", mock.Anything).Return([]model.Project{
		{ID: 1, Name: "Project Alpha", Slug: "project-alpha", Description: "First project"},
	}, nil)

	req, _ := http.NewRequest("GET", "/projects", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var projects []model.Project
	err := json.Unmarshal(resp.Body.Bytes(), &projects)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "project-alpha", projects[0].Slug)

	mockRepo.AssertExpectations(t)
}

func TestProjectCreate_DerivesSlug(t *testing.T) {
	// Arrange
	router, mockRepo := setupProjectTest()

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).
		Run(func(args mock.Arguments) {
			project := args.Get(1).(*model.Project)
			project.ID = 3
		}).
		Return(nil)

	reqBody := handler.ProjectRequest{Name: "My Plan", Description: "d"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var project model.Project
	err := json.Unmarshal(resp.Body.Bytes(), &project)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), project.ID)
	assert.Equal(t, "my-plan", project.Slug)
	assert.Equal(t, "My Plan", project.Name)

	mockRepo.AssertExpectations(t)
}

func TestProjectCreate_MissingName(t *testing.T) {
	// Arrange
	router, mockRepo := setupProjectTest()

	req, _ := http.NewRequest("POST", "/projects", bytes.NewBufferString(`{"description": "d"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: validation fails before the repository is touched.
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectCreate_SlugTaken(t *testing.T) {
	// Arrange
	router, mockRepo := setupProjectTest()

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).
		Return(repository.ErrSlugTaken)

	reqBody := handler.ProjectRequest{Name: "Project Alpha", Description: "d"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestProjectUpdate_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupProjectTest()

	mockRepo.On("UpdateBySlug", mock.Anything, "missing", mock.Anything).
		Return(nil, repository.ErrProjectNotFound)

	req, _ := http.NewRequest("PUT", "/projects/missing", bytes.NewBufferString(`{"description": "x"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Project not found")
	mockRepo.AssertExpectations(t)
}

func TestProjectDelete(t *testing.T) {
	// Arrange
	router, mockRepo := setupProjectTest()

	mockRepo.On("DeleteBySlug", mock.Anything, "project-alpha").Return(nil)

	req, _ := http.NewRequest("DELETE", "/projects/project-alpha", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success": true}`, resp.Body.String())
	mockRepo.AssertExpectations(t)
}

func TestProjectDelete_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupProjectTest()

	mockRepo.On("DeleteBySlug", mock.Anything, "missing").Return(repository.ErrProjectNotFound)

	req, _ := http.NewRequest("DELETE", "/projects/missing", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockRepo.AssertExpectations(t)
}
