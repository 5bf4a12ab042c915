package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"devboard/internal/config"
	"devboard/internal/handler"
)

func setupOAuthTest(tokenURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := &config.Config{
		GitHubClientID:     "client-id",
		GitHubClientSecret: "client-secret",
		GitHubTokenURL:     tokenURL,
	}
	r.GET("/oauth/exchange", handler.NewOAuthHandler(cfg).Exchange)

	return r
}

func TestOAuthExchange_NoCode(t *testing.T) {
	// Arrange
	router := setupOAuthTest("http://invalid.test")

	req, _ := http.NewRequest("GET", "/oauth/exchange", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error": "No code provided"}`, resp.Body.String())
}

func TestOAuthExchange_Success(t *testing.T) {
	// Arrange: a fake provider that returns a token for our credentials.
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "gho_testtoken"}`))
	}))
	defer provider.Close()

	router := setupOAuthTest(provider.URL)

	req, _ := http.NewRequest("GET", "/oauth/exchange?code=valid-code", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"access_token": "gho_testtoken"}`, resp.Body.String())
}

func TestOAuthExchange_ProviderReportsError(t *testing.T) {
	// Arrange: GitHub reports bad codes inside a 200 response.
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": "bad_verification_code", "error_description": "The code passed is incorrect or expired."}`))
	}))
	defer provider.Close()

	router := setupOAuthTest(provider.URL)

	req, _ := http.NewRequest("GET", "/oauth/exchange?code=expired-code", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error": "The code passed is incorrect or expired."}`, resp.Body.String())
}

func TestOAuthExchange_ProviderUnavailable(t *testing.T) {
	// Arrange
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer provider.Close()

	router := setupOAuthTest(provider.URL)

	req, _ := http.NewRequest("GET", "/oauth/exchange?code=valid-code", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error": "Failed to get access token"}`, resp.Body.String())
}
