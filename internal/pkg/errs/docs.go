// Package errs holds the error types shared by the catalog layers.
//
// EntityValidationError is what aggregates return when an invariant does not
// hold. Its message is shown to callers as is (e.g. "Name should not be empty
// or null"), so Error() adds no prefix, and it unwraps to ErrEntityValidation
// for errors.Is checks across layers.
//
// ValueIsRequiredError and ValueIsInvalidError cover parameter checks outside
// the aggregate, such as a zero UUID or an unparsable identifier. They unwrap
// to their sentinel and keep messages on a single line.
package errs
