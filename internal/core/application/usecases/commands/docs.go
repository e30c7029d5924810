// Package commands contains the write operations of the catalog application.
// Command objects are validated at construction time and guarded against
// zero-value use; handlers turn them into domain calls.
package commands
