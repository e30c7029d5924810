package commands

import (
	"errors"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var (
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// UpdateCategoryCommand is a partial update: absent fields are left alone.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	name        kernel.Optional[string]
	description kernel.Optional[string]

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a partial update; pass kernel.None to keep a field.
func NewUpdateCategoryCommand(name, description kernel.Optional[string]) UpdateCategoryCommand {
	return UpdateCategoryCommand{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

// Name returns the new name, if any.
func (c UpdateCategoryCommand) Name() kernel.Optional[string] {
	return c.name
}

// Description returns the new description, if any.
func (c UpdateCategoryCommand) Description() kernel.Optional[string] {
	return c.description
}

// Apply runs the update against target. On error target is unchanged.
func (c UpdateCategoryCommand) Apply(target *category.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return errors.Join(ErrCategoryIsRequired, err)
	}

	return target.Update(c.name, c.description)
}
