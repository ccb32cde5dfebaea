package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"curador/internal/model"
	"curador/internal/repository"
)

const (
	defaultLimit = 100
	nameRules    = "required,min=1,max=100"
)

// LocationService defines the use cases for managing locations.
type LocationService interface {
	Create(ctx context.Context, in model.LocationCreate) (*model.Location, error)
	List(ctx context.Context, limit, offset int) ([]model.Location, error)
	Get(ctx context.Context, id int64) (*model.Location, error)
	// GetByName matches the name exactly, case-sensitive.
	GetByName(ctx context.Context, name string) (*model.Location, error)
	// Update applies only the fields present in in.
	Update(ctx context.Context, id int64, in model.LocationUpdate) (*model.Location, error)
	// Delete removes the location and returns its last state. Objects that
	// referenced it keep existing without a location.
	Delete(ctx context.Context, id int64) (*model.Location, error)
}

type locationService struct {
	repo repository.LocationRepository
	now  func() time.Time
}

// NewLocationService constructs a new LocationService.
func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *locationService) Create(ctx context.Context, in model.LocationCreate) (*model.Location, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, in.Name, 0); err != nil {
		return nil, err
	}

	now := s.now()
	loc, err := s.repo.Create(ctx, &model.Location{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, nameTaken(in.Name)
		}
		return nil, fmt.Errorf("create location: %w", err)
	}
	return loc, nil
}

func (s *locationService) List(ctx context.Context, limit, offset int) ([]model.Location, error) {
	locs, err := s.repo.List(ctx, page(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locs, nil
}

func (s *locationService) Get(ctx context.Context, id int64) (*model.Location, error) {
	loc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (s *locationService) GetByName(ctx context.Context, name string) (*model.Location, error) {
	loc, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (s *locationService) Update(ctx context.Context, id int64, in model.LocationUpdate) (*model.Location, error) {
	loc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		if in.Name.Value == nil {
			return nil, nullNotAllowed("nome")
		}
		name := *in.Name.Value
		if err := validateField("nome", name, nameRules); err != nil {
			return nil, err
		}
		if name != loc.Name {
			if err := s.ensureNameFree(ctx, name, id); err != nil {
				return nil, err
			}
		}
		loc.Name = name
	}
	if in.Description.Set {
		if in.Description.Value != nil {
			if err := validateField("descricao", *in.Description.Value, "max=255"); err != nil {
				return nil, err
			}
		}
		loc.Description = in.Description.Value
	}
	loc.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, loc)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, nameTaken(loc.Name)
		}
		return nil, fmt.Errorf("update location: %w", err)
	}
	return updated, nil
}

func (s *locationService) Delete(ctx context.Context, id int64) (*model.Location, error) {
	loc, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete location: %w", err)
	}
	return loc, nil
}

// ensureNameFree fails when another location (other than self) uses name.
// The unique constraint on locais.nome still catches concurrent writers.
func (s *locationService) ensureNameFree(ctx context.Context, name string, self int64) error {
	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return fmt.Errorf("find location by name: %w", err)
	case existing.ID != self:
		return nameTaken(name)
	}
	return nil
}

func nameTaken(name string) error {
	return fmt.Errorf("%w: %q", ErrLocationNameTaken, name)
}

// page applies the listing defaults: limit 100 when unset, offset never negative.
func page(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}
