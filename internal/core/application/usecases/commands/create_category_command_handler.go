package commands

import (
	"context"
	"log/slog"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
)

// CreateCategoryCommandHandler builds Category aggregates from validated
// commands. Nothing is stored; the caller owns the returned aggregate.
type CreateCategoryCommandHandler struct {
	clock  kernel.Clock
	ids    kernel.IDGenerator
	logger *slog.Logger
}

// NewCreateCategoryCommandHandler wires the clock and id source used for new
// categories. A nil logger discards output.
func NewCreateCategoryCommandHandler(
	clock kernel.Clock,
	ids kernel.IDGenerator,
	logger *slog.Logger,
) CreateCategoryCommandHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return CreateCategoryCommandHandler{
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

// Handle creates the category described by cmd.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []category.Option{
		category.WithClock(h.clock),
		category.WithIDGenerator(h.ids),
	}
	if isActive, ok := cmd.IsActive().Get(); ok {
		opts = append(opts, category.WithIsActive(isActive))
	}

	c, err := category.New(cmd.Name(), cmd.Description(), opts...)
	if err != nil {
		h.logger.WarnContext(ctx, "category rejected", slog.String("error", err.Error()))
		return nil, err
	}

	h.logger.InfoContext(ctx, "category created",
		slog.String("id", c.ID().String()),
		slog.Bool("is_active", c.IsActive()),
	)
	return c, nil
}
