package domain

// TestCase represents a test case attached to a problem. Only sample
// cases are ever transmitted to the client in full; hidden cases come
// back as pass/fail outcomes only.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	IsSample       bool   `json:"isSample"`
}
