package tiprepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
	"github.com/yanqian/wellness-tips/pkg/util"
)

// PostgresRepository implements wellness.TipRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const upsertTipSQL = `
	INSERT INTO wellness_tips (` + tipColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		summary = EXCLUDED.summary,
		detailed_explanation = EXCLUDED.detailed_explanation,
		step_by_step_guide = EXCLUDED.step_by_step_guide,
		category = EXCLUDED.category,
		icon = EXCLUDED.icon,
		is_favorite = EXCLUDED.is_favorite,
		is_current_generation = EXCLUDED.is_current_generation,
		created_at = EXCLUDED.created_at
`

// List implements wellness.TipRepository.
func (r *PostgresRepository) List(ctx context.Context, view wellness.View) ([]wellness.Tip, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tipColumns+` FROM wellness_tips`+viewFilter(view)+` ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tips := []wellness.Tip{}
	for rows.Next() {
		tip, err := scanPostgresTip(rows)
		if err != nil {
			return nil, err
		}
		tips = append(tips, tip)
	}
	return tips, rows.Err()
}

// Get implements wellness.TipRepository.
func (r *PostgresRepository) Get(ctx context.Context, id string) (wellness.Tip, bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+tipColumns+` FROM wellness_tips WHERE id = $1`, id)
	tip, err := scanPostgresTip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return wellness.Tip{}, false, nil
	}
	if err != nil {
		return wellness.Tip{}, false, err
	}
	return tip, true, nil
}

// Upsert sends the batch in a single transaction.
func (r *PostgresRepository) Upsert(ctx context.Context, tips ...wellness.Tip) error {
	if len(tips) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, tip := range tips {
		steps, err := encodeSteps(tip.StepByStepGuide)
		if err != nil {
			return err
		}
		batch.Queue(upsertTipSQL, tip.ID, tip.Title, tip.Summary, tip.DetailedExplanation, steps,
			tip.Category, tip.Icon, tip.IsFavorite, tip.IsCurrentGeneration, util.UnixMillis(tip.CreatedAt))
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for _, tip := range tips {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("upsert tip %s: %w", tip.ID, err)
			}
		}
		return results.Close()
	})
}

// Update implements wellness.TipRepository.
func (r *PostgresRepository) Update(ctx context.Context, tip wellness.Tip) error {
	steps, err := encodeSteps(tip.StepByStepGuide)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE wellness_tips
		SET title = $2, summary = $3, detailed_explanation = $4, step_by_step_guide = $5,
			category = $6, icon = $7, is_favorite = $8, is_current_generation = $9, created_at = $10
		WHERE id = $1
	`, tip.ID, tip.Title, tip.Summary, tip.DetailedExplanation, steps, tip.Category, tip.Icon,
		tip.IsFavorite, tip.IsCurrentGeneration, util.UnixMillis(tip.CreatedAt))
	return err
}

// SetFavorite implements wellness.TipRepository.
func (r *PostgresRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE wellness_tips SET is_favorite = $2 WHERE id = $1`, id, favorite)
	return err
}

// Delete implements wellness.TipRepository.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wellness_tips WHERE id = $1`, id)
	return err
}

// DeleteAll implements wellness.TipRepository.
func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wellness_tips`)
	return err
}

// MarkAllOldGeneration implements wellness.TipRepository.
func (r *PostgresRepository) MarkAllOldGeneration(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `UPDATE wellness_tips SET is_current_generation = FALSE WHERE is_current_generation`)
	return err
}

func scanPostgresTip(row rowScanner) (wellness.Tip, error) {
	var (
		tip       wellness.Tip
		steps     string
		createdAt int64
	)
	if err := row.Scan(&tip.ID, &tip.Title, &tip.Summary, &tip.DetailedExplanation, &steps,
		&tip.Category, &tip.Icon, &tip.IsFavorite, &tip.IsCurrentGeneration, &createdAt); err != nil {
		return wellness.Tip{}, err
	}
	decoded, err := decodeSteps(steps)
	if err != nil {
		return wellness.Tip{}, err
	}
	tip.StepByStepGuide = decoded
	tip.CreatedAt = util.FromUnixMillis(createdAt)
	return tip, nil
}

var _ wellness.TipRepository = (*PostgresRepository)(nil)
