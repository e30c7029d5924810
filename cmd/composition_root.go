package cmd

import (
	"log/slog"

	"catalog/internal/adapters/in/http"
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/kernel"
)

// CompositionRoot wires the clock, id generator and logger into handlers and adapters.
type CompositionRoot struct {
	config Config
	logger *slog.Logger
	clock  kernel.Clock
	ids    kernel.IDGenerator
}

// NewCompositionRoot creates the root with the system clock and random ids.
func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		logger: logger,
		clock:  kernel.SystemClock{},
		ids:    kernel.RandomIDGenerator{},
	}
}

// CreateCreateCategoryCommandHandler builds the category creation handler.
func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.clock, c.ids, c.logger)
}

// CreateHTTPServer builds the HTTP adapter on top of the command handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.CreateCreateCategoryCommandHandler())
}
