// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g. postgres). Lookups of a missing row
// return sql.ErrNoRows; constraint violations are translated to the errors below.
package repository

import (
	"context"
	"errors"

	"curador/internal/model"
)

var (
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("duplicate value violates unique constraint")
	// ErrForeignKey reports a reference to a row that does not exist.
	ErrForeignKey = errors.New("referenced row does not exist")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// LocationRepository defines data access for locations using SQL queries only.
// No business logic here, only persistence.
type LocationRepository interface {
	// Create inserts a new location and returns the stored row.
	Create(ctx context.Context, loc *model.Location) (*model.Location, error)

	// FindByID returns a location by its ID.
	FindByID(ctx context.Context, id int64) (*model.Location, error)

	// FindByName returns the location whose name matches exactly (case-sensitive).
	FindByName(ctx context.Context, name string) (*model.Location, error)

	// List returns a page of locations ordered by id.
	List(ctx context.Context, pq PageQuery) ([]model.Location, error)

	// Update overwrites name and description of an existing location.
	Update(ctx context.Context, loc *model.Location) (*model.Location, error)

	// Delete removes a location and returns the deleted row.
	Delete(ctx context.Context, id int64) (*model.Location, error)
}

// ObjectRepository defines data access for objects. Every returned object has
// its Location attached when LocationID is set and the location exists.
type ObjectRepository interface {
	Create(ctx context.Context, obj *model.Object) (*model.Object, error)
	FindByID(ctx context.Context, id int64) (*model.Object, error)
	// List applies the filter, orders newest id first and paginates.
	List(ctx context.Context, f model.ObjectFilter, pq PageQuery) ([]model.Object, error)
	Update(ctx context.Context, obj *model.Object) (*model.Object, error)
	// Delete removes an object and returns its last known state.
	Delete(ctx context.Context, id int64) (*model.Object, error)
}
