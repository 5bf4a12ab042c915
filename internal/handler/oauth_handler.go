package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"

	"devboard/internal/config"
)

// OAuthHandler brokers the GitHub authorization-code exchange so the
// client secret never reaches the browser. It holds no session state.
type OAuthHandler struct {
	cfg  *config.Config
	http *resty.Client
}

func NewOAuthHandler(cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{
		cfg:  cfg,
		http: resty.New(),
	}
}

type tokenExchangeRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

type tokenExchangeResponse struct {
	AccessToken      string `json:"access_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Exchange trades an authorization code for an access token
func (h *OAuthHandler) Exchange(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No code provided"})
		return
	}

	var tokenData tokenExchangeResponse
	resp, err := h.http.R().
		SetContext(c.Request.Context()).
		SetHeader("Accept", "application/json").
		SetBody(tokenExchangeRequest{
			ClientID:     h.cfg.GitHubClientID,
			ClientSecret: h.cfg.GitHubClientSecret,
			Code:         code,
		}).
		SetResult(&tokenData).
		Post(h.cfg.GitHubTokenURL)

	if err != nil || !resp.IsSuccess() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get access token"})
		return
	}

	// The provider reports bad codes inside a 200 response.
	if tokenData.Error != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": tokenData.ErrorDescription})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": tokenData.AccessToken})
}
