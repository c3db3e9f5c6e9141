package chatHandler

import (
	chatService "AutoPartsBot/internal/api/chat/service"
	"AutoPartsBot/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chatGroup := srv.Group("/chat")

	chatGroup.Post("/", h.middleware.NewRateLimiter, h.Chat)
	chatGroup.Post("/reset", h.middleware.NewRateLimiter, h.Reset)
	chatGroup.Get("/:session_id/history", h.History)
}
