package http

import (
	"errors"
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the category use cases over HTTP.
type Server struct {
	createCategoryHandler commands.CreateCategoryCommandHandler
}

// NewServer creates a new HTTP server with the required command handlers.
func NewServer(createCategoryHandler commands.CreateCategoryCommandHandler) *Server {
	return &Server{
		createCategoryHandler: createCategoryHandler,
	}
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/categories", s.CreateCategory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateCategory handles POST /api/v1/categories - validates and builds a new category.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var newCategory NewCategory
	if err := ctx.Bind(&newCategory); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateCategoryCommand(
		newCategory.Name,
		newCategory.Description,
		kernel.FromPtr(newCategory.IsActive),
	)
	if err != nil {
		return validationError(ctx, err)
	}

	created, err := s.createCategoryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrEntityValidation) {
			return validationError(ctx, err)
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create category",
		})
	}

	return ctx.JSON(http.StatusCreated, toCategory(created))
}

func validationError(ctx echo.Context, err error) error {
	var verr *errs.EntityValidationError
	if !errors.As(err, &verr) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusUnprocessableEntity, Error{
		Code:    http.StatusUnprocessableEntity,
		Message: verr.Message,
	})
}
