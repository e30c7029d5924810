package category

import (
	"errors"
	"time"

	"catalog/internal/core/domain/model/kernel"
)

// ErrCategoryIsNotConstructed is returned by Validate for categories that were
// not created through New.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via New constructor")

// Category is the aggregate root of the catalog classification model.
//
// Fields are private; state changes only through Activate, Deactivate and
// Update, each of which leaves the category untouched when it fails.
// A Category is not safe for concurrent mutation.
type Category struct {
	kernel.AggregateRoot

	name        string
	description string
	isActive    bool
	createdAt   time.Time
}

// Option customises New.
type Option func(*options)

type options struct {
	isActive bool
	clock    kernel.Clock
	ids      kernel.IDGenerator
}

// WithIsActive sets the initial activity flag. Categories are active by default.
func WithIsActive(isActive bool) Option {
	return func(o *options) {
		o.isActive = isActive
	}
}

// WithClock sets the clock used to stamp CreatedAt. A nil clock is ignored.
func WithClock(clock kernel.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithIDGenerator sets the identifier source. A nil generator is ignored.
func WithIDGenerator(ids kernel.IDGenerator) Option {
	return func(o *options) {
		if ids != nil {
			o.ids = ids
		}
	}
}

// New creates a category and validates it before returning. On failure no
// category is returned.
//
// Example:
//
//	c, err := category.New("Documentaries", "Non-fiction films", category.WithIsActive(false))
//	if err != nil {
//	    var verr *errs.EntityValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Message, e.g. "Name should be at least 3 characters long"
//	    }
//	}
func New(name, description string, opts ...Option) (*Category, error) {
	o := options{
		isActive: true,
		clock:    kernel.SystemClock{},
		ids:      kernel.RandomIDGenerator{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	root, err := kernel.NewAggregateRoot(o.ids.NewID())
	if err != nil {
		return nil, err
	}

	c := &Category{
		AggregateRoot: root,
		name:          name,
		description:   description,
		isActive:      o.isActive,
		createdAt:     o.clock.Now(),
	}
	if err = c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate reports ErrCategoryIsNotConstructed for nil or zero-value categories.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.ValidateRoot(ErrCategoryIsNotConstructed)
}

// IsEqual compares categories by identifier.
func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.ID().IsEqual(other.ID())
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the category description. It may be empty.
func (c *Category) Description() string {
	return c.description
}

// IsActive reports whether the category is active.
func (c *Category) IsActive() bool {
	return c.isActive
}

// CreatedAt returns the creation time stamped by the clock at construction.
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// Activate marks the category active. Calling it on an active category is a no-op.
func (c *Category) Activate() error {
	return c.setActive(true)
}

// Deactivate marks the category inactive. Calling it on an inactive category is a no-op.
func (c *Category) Deactivate() error {
	return c.setActive(false)
}

// Update applies a partial change: an absent value keeps the current field,
// a present one (including "") replaces it. Candidates are validated before
// anything is assigned.
func (c *Category) Update(name, description kernel.Optional[string]) error {
	newName := name.OrElse(c.name)
	newDescription := description.OrElse(c.description)

	if err := ValidateFields(newName, &newDescription); err != nil {
		return err
	}

	c.name = newName
	c.description = newDescription
	return nil
}

// setActive re-checks the invariants even though the flag cannot break them;
// only a corrupted category fails here.
func (c *Category) setActive(isActive bool) error {
	if err := c.validate(); err != nil {
		return err
	}

	c.isActive = isActive
	return nil
}

func (c *Category) validate() error {
	return ValidateFields(c.name, &c.description)
}
