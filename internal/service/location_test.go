package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"curador/internal/model"
	"curador/internal/repository"
	repoMocks "curador/internal/repository/mocks"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func newTestLocationService(repo *repoMocks.MockLocationRepository) *locationService {
	s := NewLocationService(repo).(*locationService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestLocationService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         model.LocationCreate
		setupMocks func(mRepo *repoMocks.MockLocationRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			in:   model.LocationCreate{Name: "Garagem", Description: strPtr("fundos")},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByName", ctx, "Garagem").Return(nil, sql.ErrNoRows)
				mRepo.On("Create", ctx, &model.Location{
					Name:        "Garagem",
					Description: strPtr("fundos"),
					CreatedAt:   fixedNow,
					UpdatedAt:   fixedNow,
				}).Return(&model.Location{ID: 1, Name: "Garagem"}, nil)
			},
		},
		{
			name:       "validation - empty name",
			in:         model.LocationCreate{Name: ""},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "validation - description too long",
			in:         model.LocationCreate{Name: "Sala", Description: strPtr(string(make([]byte, 256)))},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name: "name already taken",
			in:   model.LocationCreate{Name: "Garagem"},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByName", ctx, "Garagem").Return(&model.Location{ID: 7, Name: "Garagem"}, nil)
			},
			wantErr: ErrLocationNameTaken,
		},
		{
			name: "unique constraint backstop",
			in:   model.LocationCreate{Name: "Garagem"},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByName", ctx, "Garagem").Return(nil, sql.ErrNoRows)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrLocationNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockLocationRepository)
			tt.setupMocks(mRepo)

			loc, err := newTestLocationService(mRepo).Create(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, loc)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), loc.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestLocationService_ValidationMessage(t *testing.T) {
	_, err := NewLocationService(new(repoMocks.MockLocationRepository)).
		Create(context.Background(), model.LocationCreate{})

	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "nome is required")
}

func TestLocationService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockLocationRepository)
	mRepo.On("List", ctx, repository.PageQuery{Limit: 100, Offset: 0}).
		Return([]model.Location{{ID: 1}, {ID: 2}}, nil)
	mRepo.On("List", ctx, repository.PageQuery{Limit: 5, Offset: 10}).
		Return([]model.Location{}, nil)

	svc := NewLocationService(mRepo)

	locs, err := svc.List(ctx, 0, -3)
	require.NoError(t, err)
	assert.Len(t, locs, 2)

	locs, err = svc.List(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, locs)

	mRepo.AssertExpectations(t)
}

func TestLocationService_GetAndGetByName(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockLocationRepository)
	mRepo.On("FindByID", ctx, int64(1)).Return(&model.Location{ID: 1, Name: "Sala"}, nil)
	mRepo.On("FindByID", ctx, int64(2)).Return(nil, sql.ErrNoRows)
	mRepo.On("FindByName", ctx, "sala").Return(nil, sql.ErrNoRows)
	mRepo.On("FindByName", ctx, "Sala").Return(&model.Location{ID: 1, Name: "Sala"}, nil)

	svc := NewLocationService(mRepo)

	loc, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sala", loc.Name)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByName(ctx, "sala")
	assert.ErrorIs(t, err, ErrNotFound)

	loc, err = svc.GetByName(ctx, "Sala")
	require.NoError(t, err)
	assert.Equal(t, int64(1), loc.ID)
}

func TestLocationService_Update(t *testing.T) {
	ctx := context.Background()
	current := func() *model.Location {
		return &model.Location{ID: 3, Name: "Escritório", Description: strPtr("2º andar")}
	}

	tests := []struct {
		name       string
		in         model.LocationUpdate
		setupMocks func(mRepo *repoMocks.MockLocationRepository)
		wantErr    error
		want       *model.Location
	}{
		{
			name: "rename and keep description",
			in:   model.LocationUpdate{Name: model.Some("Home office")},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByID", ctx, int64(3)).Return(current(), nil)
				mRepo.On("FindByName", ctx, "Home office").Return(nil, sql.ErrNoRows)
				mRepo.On("Update", ctx, &model.Location{
					ID: 3, Name: "Home office", Description: strPtr("2º andar"), UpdatedAt: fixedNow,
				}).Return(&model.Location{ID: 3, Name: "Home office", Description: strPtr("2º andar")}, nil)
			},
			want: &model.Location{ID: 3, Name: "Home office", Description: strPtr("2º andar")},
		},
		{
			name: "same name skips collision check and null clears description",
			in:   model.LocationUpdate{Name: model.Some("Escritório"), Description: model.Null[string]()},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByID", ctx, int64(3)).Return(current(), nil)
				mRepo.On("Update", ctx, &model.Location{
					ID: 3, Name: "Escritório", UpdatedAt: fixedNow,
				}).Return(&model.Location{ID: 3, Name: "Escritório"}, nil)
			},
			want: &model.Location{ID: 3, Name: "Escritório"},
		},
		{
			name: "name used by another location",
			in:   model.LocationUpdate{Name: model.Some("Garagem")},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByID", ctx, int64(3)).Return(current(), nil)
				mRepo.On("FindByName", ctx, "Garagem").Return(&model.Location{ID: 9, Name: "Garagem"}, nil)
			},
			wantErr: ErrLocationNameTaken,
		},
		{
			name: "null name rejected",
			in:   model.LocationUpdate{Name: model.Null[string]()},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByID", ctx, int64(3)).Return(current(), nil)
			},
			wantErr: ErrValidation,
		},
		{
			name: "not found",
			in:   model.LocationUpdate{Name: model.Some("x")},
			setupMocks: func(mRepo *repoMocks.MockLocationRepository) {
				mRepo.On("FindByID", ctx, int64(3)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockLocationRepository)
			tt.setupMocks(mRepo)

			loc, err := newTestLocationService(mRepo).Update(ctx, 3, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, loc)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestLocationService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockLocationRepository)
	mRepo.On("Delete", ctx, int64(1)).Return(&model.Location{ID: 1, Name: "Sótão"}, nil)
	mRepo.On("Delete", ctx, int64(2)).Return(nil, sql.ErrNoRows)
	mRepo.On("Delete", ctx, int64(3)).Return(nil, errors.New("db fail"))

	svc := NewLocationService(mRepo)

	loc, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sótão", loc.Name)

	_, err = svc.Delete(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Delete(ctx, 3)
	assert.EqualError(t, err, "delete location: db fail")
}
