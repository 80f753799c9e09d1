// Package errs provides the standardized error taxonomy for the sales service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error kinds the order lifecycle distinguishes:
//   - ValueIsRequiredError / ValueIsInvalidError: caller-fixable input problems
//   - ObjectNotFoundError: no aggregate exists for the given identifier
//   - InvalidStatusTransitionError: operation illegal from the current status
//   - VersionConflictError: the aggregate changed between load and commit
//   - ExternalServiceError: a collaborator failed (distinct from "not found")
//   - PersistenceError: a storage operation failed, nothing partial persisted
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers branch on kind with errors.Is against the sentinels, so internal
// transport and storage details never have to leak past the service boundary.
package errs
