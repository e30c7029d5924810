// Package kernel provides the shared building blocks of the catalog domain model.
//
// The package includes:
//   - UUID: A value object for aggregate identifiers
//   - IDGenerator and Clock: capabilities aggregates consume at construction time
//   - Optional: An explicit "value present" marker for partial updates
//   - AggregateRoot: Identity plus constructor-guard capability composed by aggregates
//
// Everything here is immutable once built and safe to share between goroutines,
// except AggregateRoot, which is owned by the aggregate embedding it.
package kernel
