package files

import (
	"errors"
	"io/fs"

	"dev-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for client files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catch-all file route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleFile)
}

// HandleFile serves the file the request path resolves to under the base
// directory. Missing or escaping paths yield 404, unreadable files 403.
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	f, err := h.service.Fetch(c.Path())
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrEscapesBase):
		l.Warn("File not found", zap.String("path", c.Path()))
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		l.Warn("File not readable", zap.String("path", c.Path()))
		return c.SendStatus(fiber.StatusForbidden)
	default:
		l.Error("File read failed", zap.String("path", c.Path()), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, h.service.ContentType(f.Path))
	return c.Send(f.Body)
}
