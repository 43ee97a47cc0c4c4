package migrations

import (
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Up aplica as migrações embutidas no binário
func Up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "erro ao configurar dialeto das migrações")
	}

	if err := goose.Up(db, "sql"); err != nil {
		return errors.Wrap(err, "erro ao aplicar migrações")
	}

	return nil
}
