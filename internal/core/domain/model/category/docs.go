// Package category implements the Category aggregate of the catalog: a
// classification entity with a name, a description, an activity flag and a
// creation timestamp.
//
// Key business rules:
//   - Name is not blank and holds 3 to 255 characters
//   - Description is present and holds at most 10000 characters (empty is fine)
//   - New categories are active unless stated otherwise
//   - The identifier and creation time never change after construction
//
// Every mutation re-runs the same validation routine. Validation stops at the
// first violation and reports it as an *errs.EntityValidationError whose
// message is part of the public contract.
package category
