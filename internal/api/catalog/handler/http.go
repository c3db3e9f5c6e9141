package catalogHandler

import (
	catalogService "AutoPartsBot/internal/api/catalog/service"
	"AutoPartsBot/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	parts := srv.Group("/catalog")

	parts.Get("/parts", h.ListParts)
	parts.Get("/parts/search", h.SearchParts)
	parts.Get("/parts/:sku", h.GetPart)
	parts.Get("/makes", h.ListMakes)
}
