package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/lottery-results-api/infrastructure/database/postgres"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

//go:generate mockgen -source=lottery_result.go -destination=mocks/mock_lottery_result.go -package=mocks

const lotteryResultsTable = "lottery_results"

type LotteryResultRepository interface {
	SaveResults(ctx context.Context, results []domain.LotteryResult) error
}

type lotteryResultRepository struct {
	conn postgres.Conn
}

func NewLotteryResultRepository(conn postgres.Conn) LotteryResultRepository {
	return &lotteryResultRepository{
		conn: conn,
	}
}

// SaveResults grava os resultados de uma execução; o mesmo sorteio é atualizado, não duplicado
func (r *lotteryResultRepository) SaveResults(ctx context.Context, results []domain.LotteryResult) error {
	if len(results) == 0 {
		return nil
	}

	query := squirrel.
		Insert(lotteryResultsTable).
		Columns("id", "slug", "name", "country", "numbers", "extras", "draw_date", "prize", "concurso", "next_prize", "next_date").
		Suffix(`ON CONFLICT (slug, concurso, draw_date) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			numbers = EXCLUDED.numbers,
			extras = EXCLUDED.extras,
			prize = EXCLUDED.prize,
			next_prize = EXCLUDED.next_prize,
			next_date = EXCLUDED.next_date,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar)

	for _, result := range results {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do resultado: %w", err)
		}

		query = query.Values(
			id,
			result.Slug,
			result.Name,
			result.Country,
			toInt64Array(result.Numbers),
			toInt64Array(result.Extras),
			result.Date,
			result.Prize,
			result.Concurso,
			result.NextPrize,
			result.NextDate,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao salvar resultados: %w", err)
		}
		return nil
	})
}

func toInt64Array(values []int) pq.Int64Array {
	out := make(pq.Int64Array, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}
