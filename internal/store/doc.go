// Package store defines the persistence contracts consumed by the service
// layer, along with the shared error taxonomy and transaction helpers.
// Concrete implementations live in internal/platform/postgres.
package store
