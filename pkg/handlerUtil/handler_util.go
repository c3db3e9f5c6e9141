package handlerUtil

import (
	"AutoPartsBot/internal/api/catalog"
	"AutoPartsBot/internal/api/chat"
	"AutoPartsBot/pkg/log"
	"AutoPartsBot/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	// Chat domain errors
	if errors.Is(err, chat.ErrEmptyMessage) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Empty message")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Message must not be empty",
			"code":    "EMPTY_MESSAGE",
		})
	}

	if errors.Is(err, chat.ErrInvalidSession) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid session id")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid session id",
			"code":    "INVALID_SESSION",
		})
	}

	if errors.Is(err, chat.ErrHistoryNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No history for session")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No history for session",
			"code":    "HISTORY_NOT_FOUND",
		})
	}

	if errors.Is(err, chat.ErrSessionLoad) || errors.Is(err, chat.ErrSessionSave) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Session store failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Session store failure",
		})
	}

	// Catalog domain errors
	if errors.Is(err, catalog.ErrPartNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Part not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Part not found",
		})
	}

	if errors.Is(err, catalog.ErrEmptyQuery) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Empty search query")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query must not be empty",
		})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
