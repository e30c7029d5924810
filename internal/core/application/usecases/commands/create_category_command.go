package commands

import (
	"errors"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand carries the input of a category creation.
//
// Example:
//
//	description := "Films based on real events"
//	cmd, err := NewCreateCategoryCommand("Documentaries", &description, kernel.None[bool]())
//	if err != nil {
//	    return err // *errs.EntityValidationError
//	}
//	c, err := handler.Handle(ctx, cmd)
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	isActive    kernel.Optional[bool]

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand validates the input with the category rules. A nil
// description is reported as "Description should not be null".
func NewCreateCategoryCommand(
	name string,
	description *string,
	isActive kernel.Optional[bool],
) (CreateCategoryCommand, error) {
	if err := category.ValidateFields(name, description); err != nil {
		return CreateCategoryCommand{}, err
	}

	return CreateCategoryCommand{
		name:        name,
		description: *description,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// Name returns the requested category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

// Description returns the requested description.
func (c CreateCategoryCommand) Description() string {
	return c.description
}

// IsActive returns the requested flag; absent means the category default.
func (c CreateCategoryCommand) IsActive() kernel.Optional[bool] {
	return c.isActive
}
