package postgres

import (
	"context"
	"database/sql"

	"curador/internal/model"
	"curador/internal/repository"
)

// LocationPostgres is a PostgreSQL implementation of repository.LocationRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type LocationPostgres struct {
	db *sql.DB
}

// NewLocationPostgres creates a new LocationPostgres repository.
func NewLocationPostgres(db *sql.DB) *LocationPostgres {
	return &LocationPostgres{db: db}
}

var _ repository.LocationRepository = (*LocationPostgres)(nil)

const locationColumns = `id, nome, descricao, data_criacao, data_atualizacao`

func scanLocation(row interface{ Scan(...any) error }) (*model.Location, error) {
	var l model.Location
	if err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new location row and returns the stored record.
func (r *LocationPostgres) Create(ctx context.Context, loc *model.Location) (*model.Location, error) {
	const q = `
		INSERT INTO locais (nome, descricao, data_criacao, data_atualizacao)
		VALUES ($1, $2, $3, $3)
		RETURNING ` + locationColumns
	row := r.db.QueryRowContext(ctx, q, loc.Name, loc.Description, loc.CreatedAt)
	out, err := scanLocation(row)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// FindByID fetches a single location by its ID.
func (r *LocationPostgres) FindByID(ctx context.Context, id int64) (*model.Location, error) {
	const q = `SELECT ` + locationColumns + ` FROM locais WHERE id = $1`
	return scanLocation(r.db.QueryRowContext(ctx, q, id))
}

// FindByName fetches a location by exact name.
func (r *LocationPostgres) FindByName(ctx context.Context, name string) (*model.Location, error) {
	const q = `SELECT ` + locationColumns + ` FROM locais WHERE nome = $1`
	return scanLocation(r.db.QueryRowContext(ctx, q, name))
}

// List returns locations using LIMIT/OFFSET pagination.
func (r *LocationPostgres) List(ctx context.Context, pq repository.PageQuery) ([]model.Location, error) {
	const q = `
		SELECT ` + locationColumns + `
		FROM locais
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes name and description and bumps data_atualizacao.
func (r *LocationPostgres) Update(ctx context.Context, loc *model.Location) (*model.Location, error) {
	const q = `
		UPDATE locais
		SET nome = $2, descricao = $3, data_atualizacao = $4
		WHERE id = $1
		RETURNING ` + locationColumns
	row := r.db.QueryRowContext(ctx, q, loc.ID, loc.Name, loc.Description, loc.UpdatedAt)
	out, err := scanLocation(row)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Delete removes a location by ID and returns the deleted row.
// Objects referencing it keep existing; the foreign key nulls their localizacao_id.
func (r *LocationPostgres) Delete(ctx context.Context, id int64) (*model.Location, error) {
	const q = `DELETE FROM locais WHERE id = $1 RETURNING ` + locationColumns
	return scanLocation(r.db.QueryRowContext(ctx, q, id))
}
