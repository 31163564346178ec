package generate

import (
	"context"
	"strings"
	"sync"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
	"gitlab.com/algoarena-2025.net/internal/static/errs"
)

var _ IGenerateService = (*GenerateService)(nil)

const (
	msgDescriptionRequired = "Please enter a problem description"
	msgGenerationFailed    = "Failed to generate problem"
)

type GenerateService struct {
	api    secondary.GenerationAPI
	logger primary.Logger

	mu          sync.Mutex
	description string
	generating  bool
	lastError   string
}

func NewGenerateService(api secondary.GenerationAPI, logger primary.Logger) *GenerateService {
	return &GenerateService{
		api:    api,
		logger: logger,
	}
}

func (s *GenerateService) SetDescription(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = text
}

func (s *GenerateService) Description() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.description
}

func (s *GenerateService) Generating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating
}

func (s *GenerateService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *GenerateService) Generate(ctx context.Context) (*domain.Problem, error) {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return nil, errs.GenerationInFlight
	}
	if strings.TrimSpace(s.description) == "" {
		s.lastError = msgDescriptionRequired
		s.mu.Unlock()
		return nil, errs.DescriptionRequired
	}
	s.generating = true
	s.lastError = ""
	description := s.description
	s.mu.Unlock()

	problem, err := s.api.Generate(ctx, description)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	if err != nil {
		// The entered text stays put so the user can retry without
		// retyping.
		s.lastError = domain.ErrorMessage(err, msgGenerationFailed)
		s.logger.Error("Problem generation failed", "error", err)
		return nil, err
	}

	s.logger.Info("Problem generated", "problemId", problem.ID, "title", problem.Title)
	return problem, nil
}
