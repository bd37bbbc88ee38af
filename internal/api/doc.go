// Package api implements the HTTP delivery layer: request DTOs, handlers
// for each entity, and the mapping from service/store/domain errors to HTTP
// status codes. Handlers are deliberately thin; every business decision
// lives in the service facade.
package api
