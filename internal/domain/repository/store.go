// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// CollectionStore persists named collections as serialized JSON arrays.
// It owns no business logic beyond load and save; repositories built on it
// are the sole mutators of the collections they manage.
type CollectionStore interface {
	// Load reads the collection stored under key into out. A key that has
	// never been saved loads as an empty collection, not an error.
	Load(ctx context.Context, key string, out any) error

	// Save replaces the collection stored under key with value.
	Save(ctx context.Context, key string, value any) error
}
