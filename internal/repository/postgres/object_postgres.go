package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"curador/internal/model"
	"curador/internal/repository"
)

// ObjectPostgres is a PostgreSQL implementation of repository.ObjectRepository.
// Every statement joins locais so the returned objects carry their location.
type ObjectPostgres struct {
	db *sql.DB
}

// NewObjectPostgres creates a new ObjectPostgres repository.
func NewObjectPostgres(db *sql.DB) *ObjectPostgres {
	return &ObjectPostgres{db: db}
}

var _ repository.ObjectRepository = (*ObjectPostgres)(nil)

const objectSelect = `
	o.id, o.nome, o.descricao, o.categoria, o.tags, o.caminho_imagem, o.localizacao_id,
	o.data_cadastro, o.data_atualizacao,
	l.id, l.nome, l.descricao, l.data_criacao, l.data_atualizacao`

func scanObject(row interface{ Scan(...any) error }) (*model.Object, error) {
	var (
		o          model.Object
		locID      *int64
		locName    *string
		locDesc    *string
		locCreated *time.Time
		locUpdated *time.Time
	)
	if err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Description,
		&o.Category,
		&o.Tags,
		&o.ImagePath,
		&o.LocationID,
		&o.CreatedAt,
		&o.UpdatedAt,
		&locID,
		&locName,
		&locDesc,
		&locCreated,
		&locUpdated,
	); err != nil {
		return nil, err
	}
	if locID != nil {
		loc := &model.Location{ID: *locID, Description: locDesc}
		if locName != nil {
			loc.Name = *locName
		}
		if locCreated != nil {
			loc.CreatedAt = *locCreated
		}
		if locUpdated != nil {
			loc.UpdatedAt = *locUpdated
		}
		o.Location = loc
	}
	return &o, nil
}

// Create inserts a new object row and returns it with its location attached.
func (r *ObjectPostgres) Create(ctx context.Context, obj *model.Object) (*model.Object, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO objetos (nome, descricao, categoria, tags, caminho_imagem, localizacao_id, data_cadastro, data_atualizacao)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING *
		)
		SELECT ` + objectSelect + `
		FROM inserted o
		LEFT JOIN locais l ON l.id = o.localizacao_id
	`
	row := r.db.QueryRowContext(ctx, q,
		obj.Name,
		obj.Description,
		obj.Category,
		obj.Tags,
		obj.ImagePath,
		obj.LocationID,
		obj.CreatedAt,
	)
	out, err := scanObject(row)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// FindByID fetches a single object by its ID.
func (r *ObjectPostgres) FindByID(ctx context.Context, id int64) (*model.Object, error) {
	const q = `
		SELECT ` + objectSelect + `
		FROM objetos o
		LEFT JOIN locais l ON l.id = o.localizacao_id
		WHERE o.id = $1
	`
	return scanObject(r.db.QueryRowContext(ctx, q, id))
}

// List returns objects matching the filter, newest id first.
func (r *ObjectPostgres) List(ctx context.Context, f model.ObjectFilter, pq repository.PageQuery) ([]model.Object, error) {
	var (
		conds []string
		args  []any
	)
	ilike := func(column, value string) {
		args = append(args, escapeLike(value))
		conds = append(conds, fmt.Sprintf(`%s ILIKE '%%' || $%d || '%%'`, column, len(args)))
	}
	if f.Name != "" {
		ilike("o.nome", f.Name)
	}
	if f.Category != "" {
		ilike("o.categoria", f.Category)
	}
	if f.Tag != "" {
		ilike("o.tags", f.Tag)
	}
	if f.LocationID != nil {
		args = append(args, *f.LocationID)
		conds = append(conds, fmt.Sprintf("o.localizacao_id = $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + objectSelect + `
		FROM objetos o
		LEFT JOIN locais l ON l.id = o.localizacao_id`)
	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	args = append(args, pq.Limit, pq.Offset)
	fmt.Fprintf(&sb, "\n\t\tORDER BY o.id DESC\n\t\tLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Object, 0)
	for rows.Next() {
		o, err := scanObject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites every mutable column and returns the row with the
// location resolved against the new localizacao_id.
func (r *ObjectPostgres) Update(ctx context.Context, obj *model.Object) (*model.Object, error) {
	const q = `
		WITH updated AS (
			UPDATE objetos
			SET nome = $2, descricao = $3, categoria = $4, tags = $5,
			    caminho_imagem = $6, localizacao_id = $7, data_atualizacao = $8
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + objectSelect + `
		FROM updated o
		LEFT JOIN locais l ON l.id = o.localizacao_id
	`
	row := r.db.QueryRowContext(ctx, q,
		obj.ID,
		obj.Name,
		obj.Description,
		obj.Category,
		obj.Tags,
		obj.ImagePath,
		obj.LocationID,
		obj.UpdatedAt,
	)
	out, err := scanObject(row)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Delete removes an object and returns the deleted row, location included.
func (r *ObjectPostgres) Delete(ctx context.Context, id int64) (*model.Object, error) {
	const q = `
		WITH deleted AS (
			DELETE FROM objetos WHERE id = $1 RETURNING *
		)
		SELECT ` + objectSelect + `
		FROM deleted o
		LEFT JOIN locais l ON l.id = o.localizacao_id
	`
	return scanObject(r.db.QueryRowContext(ctx, q, id))
}

// escapeLike makes value match literally inside an ILIKE pattern.
func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
