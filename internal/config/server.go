package config

import (
	"AutoPartsBot/database/postgres"
	catalogHandler "AutoPartsBot/internal/api/catalog/handler"
	catalogRepository "AutoPartsBot/internal/api/catalog/repository"
	catalogService "AutoPartsBot/internal/api/catalog/service"
	chatHandler "AutoPartsBot/internal/api/chat/handler"
	chatRepository "AutoPartsBot/internal/api/chat/repository"
	chatService "AutoPartsBot/internal/api/chat/service"
	"AutoPartsBot/internal/middleware"
	"AutoPartsBot/pkg/dataset"
	"AutoPartsBot/pkg/gemini"
	"AutoPartsBot/pkg/nlp"
	redisPkg "AutoPartsBot/pkg/redis"
	"AutoPartsBot/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	sessionStore redisPkg.ISessionStore
	geminiClient gemini.IGemini
	datasets     *dataset.Datasets
	dialogueOpts chatService.Options
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithSessionStore(store redisPkg.ISessionStore) ServerOption {
	return func(s *Server) error {
		s.sessionStore = store
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini unavailable, running with rule-based fallback: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithDatasets(dir string) ServerOption {
	return func(s *Server) error {
		if dir == "" {
			dir = "./data"
		}
		s.datasets = dataset.Load(dir)
		return nil
	}
}

// WithDialogueOptions reads the dialogue tuning knobs from the environment.
// Unset or invalid values keep the service defaults.
func WithDialogueOptions() ServerOption {
	return func(s *Server) error {
		s.dialogueOpts = chatService.Options{
			ContextTimeout:    envInt("CHAT_CONTEXT_TIMEOUT"),
			IntentCapacity:    envInt("CHAT_INTENT_CAPACITY"),
			UnknownEscalation: envInt("CHAT_UNKNOWN_ESCALATION"),
			AbuseEscalation:   envInt("CHAT_ABUSE_ESCALATION"),
			LeadMaxAttempts:   envInt("CHAT_LEAD_MAX_ATTEMPTS"),
			MaxResults:        envInt("CHAT_MAX_RESULTS"),
			AlternativeLimit:  envInt("CHAT_ALTERNATIVE_LIMIT"),
		}
		return nil
	}
}

func envInt(key string) int {
	v, _ := strconv.Atoi(os.Getenv(key))
	return v
}

func (s *Server) RegisterHandler() {
	if s.datasets == nil {
		s.datasets = &dataset.Datasets{
			CategorySynonyms: map[string]string{},
			InstallTimes:     map[string]string{},
		}
	}
	if s.sessionStore == nil {
		s.sessionStore = redisPkg.NewMemoryStore()
	}

	matcher := nlp.NewMatcher(nil)

	// Catalog Domain
	catalogRepo := catalogRepository.New(s.datasets.Parts, s.log)
	catalogServices := catalogService.New(s.log, catalogRepo, matcher, s.datasets.CategorySynonyms)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Chat Domain
	var chatRepo chatRepository.Repository
	if s.db != nil {
		chatRepo = chatRepository.New(s.db, s.log)
	}
	chatServices := chatService.New(s.log, chatRepo, s.sessionStore, catalogRepo, matcher, s.geminiClient, s.datasets, s.utils, s.dialogueOpts)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, catalogHandlers, chatHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
