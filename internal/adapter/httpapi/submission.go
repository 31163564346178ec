package httpapi

import (
	"context"
	"net/url"

	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

var _ secondary.SubmissionAPI = (*Client)(nil)

func (c *Client) Run(ctx context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	var resp domain.EvaluationResult
	if err := c.postEval(ctx, "/submissions/run", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Submit(ctx context.Context, req domain.EvaluationRequest) (*domain.SubmitOutcome, error) {
	var resp domain.SubmitOutcome
	if err := c.postEval(ctx, "/submissions/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Mine(ctx context.Context, problemID string) ([]domain.Submission, error) {
	query := url.Values{}
	if problemID != "" {
		query.Set("problemId", problemID)
	}
	var resp struct {
		Submissions []domain.Submission `json:"submissions"`
	}
	if err := c.get(ctx, "/submissions", query, &resp); err != nil {
		return nil, err
	}
	return resp.Submissions, nil
}

func (c *Client) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	var resp struct {
		Submission domain.Submission `json:"submission"`
	}
	if err := c.get(ctx, "/submissions/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Submission, nil
}
