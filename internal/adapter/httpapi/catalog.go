package httpapi

import (
	"context"
	"net/url"

	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

var _ secondary.CatalogAPI = (*Client)(nil)

func (c *Client) List(ctx context.Context, filters domain.ProblemFilters) ([]domain.Problem, error) {
	query := url.Values{}
	if filters.Difficulty != "" {
		query.Set("difficulty", string(filters.Difficulty))
	}
	if filters.Tags != "" {
		query.Set("tags", filters.Tags)
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}

	var resp struct {
		Problems []domain.Problem `json:"problems"`
	}
	if err := c.get(ctx, "/problems", query, &resp); err != nil {
		return nil, err
	}
	return resp.Problems, nil
}

func (c *Client) Get(ctx context.Context, id string) (*domain.Problem, []domain.TestCase, error) {
	var resp struct {
		Problem   domain.Problem    `json:"problem"`
		TestCases []domain.TestCase `json:"testCases"`
	}
	if err := c.get(ctx, "/problems/"+id, nil, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.Problem, resp.TestCases, nil
}

func (c *Client) Create(ctx context.Context, draft domain.ProblemDraft) (*domain.Problem, error) {
	var resp struct {
		Problem domain.Problem `json:"problem"`
	}
	if err := c.post(ctx, "/problems", draft, &resp); err != nil {
		return nil, err
	}
	return &resp.Problem, nil
}

func (c *Client) Update(ctx context.Context, id string, patch domain.ProblemPatch) (*domain.Problem, error) {
	var resp struct {
		Problem domain.Problem `json:"problem"`
	}
	if err := c.put(ctx, "/problems/"+id, patch, &resp); err != nil {
		return nil, err
	}
	return &resp.Problem, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.delete(ctx, "/problems/"+id)
}

func (c *Client) TestCases(ctx context.Context, id string) ([]domain.TestCase, error) {
	var resp struct {
		TestCases []domain.TestCase `json:"testCases"`
	}
	if err := c.get(ctx, "/problems/"+id+"/testcases", nil, &resp); err != nil {
		return nil, err
	}
	return resp.TestCases, nil
}
