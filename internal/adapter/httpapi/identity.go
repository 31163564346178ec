package httpapi

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

var _ secondary.IdentityAPI = (*Client)(nil)

type credentialResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*domain.Identity, string, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp credentialResponse
	if err := c.post(ctx, "/auth/register", body, &resp); err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Identity, string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp credentialResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

func (c *Client) Profile(ctx context.Context) (*domain.Identity, error) {
	var resp struct {
		User domain.Identity `json:"user"`
	}
	if err := c.get(ctx, profilePath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
