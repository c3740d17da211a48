package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/pkg/assistant/guard"
	"portfolio-be/pkg/assistant/prompt"
	"portfolio-be/pkg/llm"
)

const (
	maxMessageLength = 2000

	// Low temperature and a hard output cap: the assistant should repeat
	// listed facts, not get creative.
	replyTemperature = 0.2
	replyMaxTokens   = 1024

	snapshotTimeout = 10 * time.Second
	generateTimeout = 30 * time.Second
)

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error)
}

type assistantService struct {
	profiles       contract.ProfileRepository
	skills         contract.SkillRepository
	experiences    contract.ExperienceRepository
	projects       contract.ProjectRepository
	certifications contract.CertificationRepository
	documentation  contract.DocumentationRepository

	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewAssistantService(
	profiles contract.ProfileRepository,
	skills contract.SkillRepository,
	experiences contract.ExperienceRepository,
	projects contract.ProjectRepository,
	certifications contract.CertificationRepository,
	documentation contract.DocumentationRepository,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		profiles:       profiles,
		skills:         skills,
		experiences:    experiences,
		projects:       projects,
		certifications: certifications,
		documentation:  documentation,
		llmProvider:    llmProvider,
		log:            log,
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, NewValidationError("message", "message is required")
	}
	if len(message) > maxMessageLength {
		return nil, NewValidationError("message", "message must be at most 2000 characters")
	}

	// Detection only: a match is logged for observability while the compiled
	// prompt's rule block remains the enforcement layer.
	if matched := guard.Screen(message); len(matched) > 0 {
		s.log.Warn("assistant", "possible prompt injection detected", map[string]interface{}{
			"patterns": matched,
		})
	}

	snapshot := s.fetchPortfolioSnapshot(ctx)
	systemPrompt := prompt.NewSnapshotBuilder(snapshot).Build()

	reply, err := s.generateReply(ctx, systemPrompt, message)
	if err != nil {
		return nil, err
	}

	return &dto.AssistantChatResponse{Message: reply}, nil
}

// fetchPortfolioSnapshot reads all six record sets concurrently. A failing
// section degrades to empty rather than failing the request: a partial bio
// beats an unusable chatbot.
func (s *assistantService) fetchPortfolioSnapshot(ctx context.Context) *entity.PortfolioSnapshot {
	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	snapshot := &entity.PortfolioSnapshot{}

	var wg sync.WaitGroup
	run := func(section string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				s.log.Warn("assistant", "snapshot section degraded to empty", map[string]interface{}{
					"section": section,
					"error":   err.Error(),
				})
			}
		}()
	}

	run("profile", func() error {
		p, err := s.profiles.Get(ctx)
		if err != nil {
			return err
		}
		snapshot.Profile = p
		return nil
	})
	run("skills", func() error {
		skills, err := s.skills.FindAll(ctx, specification.OrderBy{Field: "position"})
		if err != nil {
			return err
		}
		snapshot.Skills = skills
		return nil
	})
	run("experiences", func() error {
		experiences, err := s.experiences.FindAll(ctx, specification.OrderBy{Field: "start_date", Desc: true})
		if err != nil {
			return err
		}
		snapshot.Experiences = experiences
		return nil
	})
	run("projects", func() error {
		projects, err := s.projects.FindAll(ctx, specification.OrderBy{Field: "position"})
		if err != nil {
			return err
		}
		snapshot.Projects = projects
		return nil
	})
	run("certifications", func() error {
		certs, err := s.certifications.FindAll(ctx, specification.OrderBy{Field: "issue_date", Desc: true})
		if err != nil {
			return err
		}
		snapshot.Certifications = certs
		return nil
	})
	run("documentation", func() error {
		docs, err := s.documentation.FindAll(ctx, specification.OrderBy{Field: "position"})
		if err != nil {
			return err
		}
		snapshot.Documentation = docs
		return nil
	})

	wg.Wait()
	return snapshot
}

func (s *assistantService) generateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	history := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userMessage},
	}

	reply, err := s.llmProvider.Chat(ctx, history,
		llm.WithTemperature(replyTemperature),
		llm.WithMaxTokens(replyMaxTokens),
	)
	if err != nil {
		s.log.Error("assistant", "inference call failed", map[string]interface{}{
			"error": err.Error(),
		})
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			return "", ErrUpstreamRateLimited
		case errors.Is(err, llm.ErrQuotaExhausted):
			return "", ErrUpstreamQuota
		default:
			return "", ErrUpstreamFailure
		}
	}

	return reply, nil
}
