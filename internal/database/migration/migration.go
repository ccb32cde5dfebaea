package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// locais.nome carries a UNIQUE constraint backing the service's name pre-check.
// objetos.localizacao_id uses ON DELETE SET NULL: deleting a location keeps its objects.
var steps = []migrationStep{
	{
		Name: "create_table_locais",
		SQL: `CREATE TABLE IF NOT EXISTS locais (
  id               BIGSERIAL    PRIMARY KEY,
  nome             VARCHAR(100) NOT NULL UNIQUE CHECK (length(nome) > 0),
  descricao        VARCHAR(255),
  data_criacao     TIMESTAMPTZ  NOT NULL DEFAULT now(),
  data_atualizacao TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_objetos",
		SQL: `CREATE TABLE IF NOT EXISTS objetos (
  id               BIGSERIAL    PRIMARY KEY,
  nome             VARCHAR(100) NOT NULL CHECK (length(nome) > 0),
  descricao        VARCHAR(500),
  categoria        VARCHAR(100),
  tags             TEXT,
  caminho_imagem   VARCHAR(255),
  localizacao_id   BIGINT       REFERENCES locais (id) ON DELETE SET NULL,
  data_cadastro    TIMESTAMPTZ  NOT NULL DEFAULT now(),
  data_atualizacao TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_objetos_nome",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_objetos_nome ON objetos (nome);`,
	},
	{
		Name: "create_index_objetos_categoria",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_objetos_categoria ON objetos (categoria);`,
	},
	{
		Name: "create_index_objetos_localizacao_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_objetos_localizacao_id ON objetos (localizacao_id);`,
	},
}

// EnsureMigrated checks if the 'objetos' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.Named("database").With(zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.objetos') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
