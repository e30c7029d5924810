package kernel

import "catalog/internal/pkg/guard"

// AggregateRoot is composed into aggregates. It carries the identity and the
// constructor guard; the aggregate itself owns its invariants.
type AggregateRoot struct {
	id    UUID
	guard guard.ConstructorGuard
}

// NewAggregateRoot validates id and returns a constructed root.
func NewAggregateRoot(id UUID) (AggregateRoot, error) {
	if err := id.Validate(); err != nil {
		return AggregateRoot{}, err
	}
	return AggregateRoot{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the aggregate identifier.
func (r AggregateRoot) ID() UUID {
	return r.id
}

// ValidateRoot returns notConstructed when the root was not built with NewAggregateRoot.
func (r AggregateRoot) ValidateRoot(notConstructed error) error {
	return r.guard.Validate(notConstructed)
}
