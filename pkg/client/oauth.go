package client

import (
	"context"

	"go.uber.org/zap"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCode trades a GitHub authorization code for an access token
// via the server-side exchange endpoint.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	var token tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("code", code).
		SetResult(&token).
		SetError(&APIError{}).
		Get("/oauth/exchange")
	if err := checkResponse(resp, err); err != nil {
		c.log.Error("error exchanging authorization code", zap.Error(err))
		return "", err
	}
	return token.AccessToken, nil
}
