package files

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the file service and handler into the loader system.
type Feature struct {
	handler *Handler
}

// NewFeature creates the files feature rooted at baseDir.
func NewFeature(baseDir string, logger *zap.Logger) *Feature {
	svc := NewService(baseDir, logger)
	return &Feature{handler: NewHandler(svc)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "files"
}

// IsEnabled reports whether the feature is active. Serving files is the
// whole point of the server, so it is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature routes. Must be registered last: the catch-all
// route would shadow anything registered after it.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
