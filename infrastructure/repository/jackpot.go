package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/lottery-results-api/infrastructure/database/postgres"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

//go:generate mockgen -source=jackpot.go -destination=mocks/mock_jackpot.go -package=mocks

const jackpotsTable = "jackpots"

type JackpotRepository interface {
	SaveJackpots(ctx context.Context, jackpots []domain.JackpotData) error
}

type jackpotRepository struct {
	conn postgres.Conn
}

func NewJackpotRepository(conn postgres.Conn) JackpotRepository {
	return &jackpotRepository{
		conn: conn,
	}
}

// SaveJackpots mantém uma linha por loteria com o último valor conhecido
func (r *jackpotRepository) SaveJackpots(ctx context.Context, jackpots []domain.JackpotData) error {
	if len(jackpots) == 0 {
		return nil
	}

	query := squirrel.
		Insert(jackpotsTable).
		Columns("id", "slug", "jackpot", "jackpot_raw", "next_draw", "source").
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			jackpot = EXCLUDED.jackpot,
			jackpot_raw = EXCLUDED.jackpot_raw,
			next_draw = EXCLUDED.next_draw,
			source = EXCLUDED.source,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar)

	for _, jackpot := range jackpots {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do jackpot: %w", err)
		}

		query = query.Values(id, jackpot.Slug, jackpot.Jackpot, jackpot.JackpotRaw, jackpot.NextDraw, string(jackpot.Source))
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao salvar jackpots: %w", err)
		}
		return nil
	})
}
