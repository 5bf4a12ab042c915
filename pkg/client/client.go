// Package client is the typed data-access layer over the devboard API.
// Every call takes a context, logs failures, and returns them to the
// caller unchanged: no retries, no fallbacks.
package client

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError is the error payload the API attaches to non-2xx responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	http *resty.Client
	log  *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
		log:  logger,
	}
}

// checkResponse turns transport failures and non-2xx responses into
// errors, preserving the server's error message when one was sent.
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsSuccess() {
		return nil
	}
	if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Message != "" {
		apiErr.StatusCode = resp.StatusCode()
		return apiErr
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
}
