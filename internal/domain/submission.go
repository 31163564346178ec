package domain

import (
	"encoding/json"
	"time"
)

type SubmissionStatus string

const (
	StatusAccepted SubmissionStatus = "Accepted"
	StatusRejected SubmissionStatus = "Rejected"
)

// SubmissionProblem is the problem reference on a submission. List
// endpoints return it populated as a document, the submit endpoint as
// a bare id string, so it decodes from either shape.
type SubmissionProblem struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

func (p *SubmissionProblem) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		p.ID = id
		p.Title = ""
		return nil
	}
	type populated SubmissionProblem
	var doc populated
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*p = SubmissionProblem(doc)
	return nil
}

// Submission is a persisted, committal evaluation record. It is
// created server-side by a submit action and never mutated here.
type Submission struct {
	ID              string            `json:"_id"`
	Problem         SubmissionProblem `json:"problemId"`
	Status          SubmissionStatus  `json:"status"`
	TestCasesPassed int               `json:"testCasesPassed"`
	TotalTestCases  int               `json:"totalTestCases"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// SubmissionReceipt is the immediate acknowledgment surfaced after a
// successful submit, distinct from the per-case evaluation detail.
type SubmissionReceipt struct {
	SubmissionID    string
	Status          SubmissionStatus
	TestCasesPassed int
	TotalTestCases  int
	CreatedAt       time.Time
}
