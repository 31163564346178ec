package httpapi

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

var _ secondary.GenerationAPI = (*Client)(nil)

func (c *Client) Generate(ctx context.Context, description string) (*domain.Problem, error) {
	body := map[string]string{"problemDescription": description}
	var resp struct {
		Problem domain.Problem `json:"problem"`
	}
	if err := c.post(ctx, "/ai/generate-problem", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Problem, nil
}
