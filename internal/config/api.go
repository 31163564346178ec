package config

import (
	"os"
	"strconv"
	"time"
)

type APIConfig struct {
	BaseURL string

	// RequestTimeout bounds every catalog/identity call.
	// EvaluationTimeout bounds run/submit, which wait on the remote
	// executor and need a larger budget.
	RequestTimeout    time.Duration
	EvaluationTimeout time.Duration
}

func NewAPIConfig() *APIConfig {
	baseURL := os.Getenv("ALGOARENA_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000/api"
	}
	requestTimeoutSec := os.Getenv("API_REQUEST_TIMEOUT_SEC")
	varInt, err := strconv.Atoi(requestTimeoutSec)
	if err != nil || varInt <= 0 {
		varInt = 15
	}
	evaluationTimeoutSec := os.Getenv("API_EVALUATION_TIMEOUT_SEC")
	varInt2, err := strconv.Atoi(evaluationTimeoutSec)
	if err != nil || varInt2 <= 0 {
		varInt2 = 60
	}
	return &APIConfig{
		BaseURL:           baseURL,
		RequestTimeout:    time.Duration(varInt) * time.Second,
		EvaluationTimeout: time.Duration(varInt2) * time.Second,
	}
}
