package bootstrap

import (
	"log"

	"portfolio-be/internal/config"
	"portfolio-be/internal/controller"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/mailer"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/implementation"
	"portfolio-be/internal/repository/memory"
	"portfolio-be/internal/repository/redisrepo"
	"portfolio-be/internal/service"
	"portfolio-be/pkg/llm/factory"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	PortfolioController controller.IPortfolioController
	ContactController   controller.IContactController
	AssistantController controller.IAssistantController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.Mail.Provider == "smtp" {
		emailService = mailer.NewSMTPEmailService(
			cfg.Mail.SMTPHost,
			cfg.Mail.SMTPPort,
			cfg.Mail.SMTPEmail,
			cfg.Mail.SMTPPassword,
			cfg.Mail.SMTPEmail,
			cfg.Mail.SenderName,
			cfg.Mail.Recipient,
		)
		log.Printf("[INFO] Using Mail Provider: SMTP (%s)", cfg.Mail.SMTPHost)
	} else {
		emailService = mailer.NewResendEmailService(
			cfg.Mail.ResendAPIKey,
			cfg.Mail.SMTPEmail,
			cfg.Mail.SenderName,
			cfg.Mail.Recipient,
		)
		log.Printf("[INFO] Using Mail Provider: RESEND")
	}

	// 2. Repositories
	profileRepo := implementation.NewProfileRepository(db)
	skillRepo := implementation.NewSkillRepository(db)
	experienceRepo := implementation.NewExperienceRepository(db)
	projectRepo := implementation.NewProjectRepository(db)
	certificationRepo := implementation.NewCertificationRepository(db)
	documentationRepo := implementation.NewDocumentationRepository(db)

	var rateLimitRepo contract.RateLimitRepository
	if cfg.RateLimit.Store == "redis" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		rateLimitRepo = redisrepo.NewRateLimitRepository(redis.NewClient(opts))
		log.Printf("[INFO] Using Rate Limit Store: REDIS")
	} else {
		rateLimitRepo = memory.NewRateLimitRepository(cfg.RateLimit.SweepInterval)
		log.Printf("[INFO] Using Rate Limit Store: MEMORY")
	}

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Services
	authService := service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.OwnerKeyHash, cfg.Auth.TokenTTL, sysLogger)
	portfolioService := service.NewPortfolioService(
		profileRepo, skillRepo, experienceRepo, projectRepo, certificationRepo, documentationRepo,
	)
	contactService := service.NewContactService(
		rateLimitRepo, emailService, sysLogger,
		cfg.RateLimit.Window, cfg.RateLimit.MaxRequests,
	)
	assistantService := service.NewAssistantService(
		profileRepo, skillRepo, experienceRepo, projectRepo, certificationRepo, documentationRepo,
		llmProvider, sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		PortfolioController: controller.NewPortfolioController(portfolioService),
		ContactController:   controller.NewContactController(contactService),
		AssistantController: controller.NewAssistantController(assistantService),
		Logger:              sysLogger,
	}
}
