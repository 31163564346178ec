package domain

// CaseResult is the evaluator's verdict for a single test case. The
// client renders it as returned and never re-scores.
type CaseResult struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	ActualOutput   string `json:"actualOutput,omitempty"`
	Error          string `json:"error,omitempty"`
	Passed         bool   `json:"passed"`
	Status         string `json:"status"`
}

// EvaluationResult is the transient result of one run/submit cycle.
// Each cycle fully replaces the previous result, never merges.
type EvaluationResult struct {
	Results        []CaseResult `json:"results"`
	TotalPassed    int          `json:"totalPassed"`
	TotalTestCases int          `json:"totalTestCases"`
}

// EvaluationRequest is the payload for both run and submit.
type EvaluationRequest struct {
	Code      string   `json:"code"`
	Language  Language `json:"language"`
	ProblemID string   `json:"problemId"`
}

// SubmitOutcome is the submit response: the persisted submission plus
// the evaluation detail spread alongside it.
type SubmitOutcome struct {
	Submission Submission `json:"submission"`
	EvaluationResult
}
