package http

import (
	"time"

	"catalog/internal/core/domain/model/category"
)

// NewCategory is the POST /api/v1/categories request body. Description is a
// pointer so that JSON null and a missing field can be told apart from "".
type NewCategory struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// Category is the JSON representation of a category.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toCategory(c *category.Category) Category {
	return Category{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
