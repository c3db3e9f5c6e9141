package catalogHandler

import (
	"AutoPartsBot/internal/api/catalog"
	"AutoPartsBot/internal/entity"
	contextPkg "AutoPartsBot/pkg/context"
	"AutoPartsBot/pkg/handlerUtil"
	"AutoPartsBot/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *CatalogHandler) ListParts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list parts request")

	vehicleMake := ctx.Query("make")
	category := ctx.Query("category")

	parts, err := h.catalogService.ListParts(c, vehicleMake, category)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_parts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, catalog.PartListResponse{
			Parts: toPartResponses(parts),
			Total: len(parts),
		})
	}
}

func (h *CatalogHandler) GetPart(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	sku := ctx.Params("sku")
	part, err := h.catalogService.GetPart(c, sku)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_part")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toPartResponse(part))
	}
}

func (h *CatalogHandler) SearchParts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing search parts request")

	req := catalog.SearchRequest{Query: ctx.Query("q")}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.catalogService.Search(c, req.Query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_parts")
	}

	results := make([]catalog.SearchResultResponse, 0, len(result.Scored))
	for _, scored := range result.Scored {
		results = append(results, catalog.SearchResultResponse{
			SKU:   scored.Part.SKU,
			Name:  scored.Part.Name,
			Make:  scored.Part.Make,
			Model: scored.Part.Model,
			Price: scored.Part.Price,
			Score: scored.Score,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, catalog.SearchResponse{
			Query:   req.Query,
			Results: results,
		})
	}
}

func (h *CatalogHandler) ListMakes(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	makes, err := h.catalogService.ListMakes(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_makes")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, catalog.MakeListResponse{Makes: makes})
	}
}

func toPartResponse(part entity.Part) catalog.PartResponse {
	return catalog.PartResponse{
		SKU:          part.SKU,
		Name:         part.Name,
		Make:         part.Make,
		Model:        part.Model,
		YearRange:    part.YearRange,
		Category:     part.Category,
		Synonyms:     part.Synonyms,
		Price:        part.Price,
		StockCount:   part.StockCount,
		Availability: string(part.Availability),
		Description:  part.Description,
	}
}

func toPartResponses(parts []entity.Part) []catalog.PartResponse {
	out := make([]catalog.PartResponse, 0, len(parts))
	for _, part := range parts {
		out = append(out, toPartResponse(part))
	}
	return out
}
