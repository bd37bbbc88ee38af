// Package service contains the application's domain facade: the single
// mediator through which every read and write of Users, Places, Amenities
// and Reviews flows. It composes entity validation (internal/domain),
// the ownership policy (domain.Identity.CanMutate) and persistence access
// (internal/store) so that the business rules hold identically regardless
// of which entry point triggered them.
//
// Error handling principles:
//  1. Service methods return sentinel errors for expected error conditions
//     (store.ErrNotFound family, store.ErrEmailExists, service.ErrForbidden)
//  2. Unexpected errors are wrapped in ServiceError for context
//  3. Callers use errors.Is/errors.As to check for specific conditions
//  4. The API layer maps service errors to appropriate HTTP status codes
//
// The service layer depends on domain entities and repository interfaces
// (from store), never on specific infrastructure implementations.
package service
