package tiprepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
	"github.com/yanqian/wellness-tips/pkg/util"
)

// SQLiteRepository implements wellness.TipRepository on the embedded database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository constructs the repository. The schema must already exist.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, view wellness.View) ([]wellness.Tip, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+tipColumns+` FROM wellness_tips`+viewFilter(view)+` ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tips := []wellness.Tip{}
	for rows.Next() {
		tip, err := scanSQLiteTip(rows)
		if err != nil {
			return nil, err
		}
		tips = append(tips, tip)
	}
	return tips, rows.Err()
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (wellness.Tip, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+tipColumns+` FROM wellness_tips WHERE id = ?`, id)
	tip, err := scanSQLiteTip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return wellness.Tip{}, false, nil
	}
	if err != nil {
		return wellness.Tip{}, false, err
	}
	return tip, true, nil
}

// Upsert writes the batch in one transaction.
func (r *SQLiteRepository) Upsert(ctx context.Context, tips ...wellness.Tip) error {
	if len(tips) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO wellness_tips (`+tipColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			detailed_explanation = excluded.detailed_explanation,
			step_by_step_guide = excluded.step_by_step_guide,
			category = excluded.category,
			icon = excluded.icon,
			is_favorite = excluded.is_favorite,
			is_current_generation = excluded.is_current_generation,
			created_at = excluded.created_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, tip := range tips {
		steps, err := encodeSteps(tip.StepByStepGuide)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, tip.ID, tip.Title, tip.Summary, tip.DetailedExplanation, steps,
			tip.Category, tip.Icon, tip.IsFavorite, tip.IsCurrentGeneration, util.UnixMillis(tip.CreatedAt)); err != nil {
			return fmt.Errorf("upsert tip %s: %w", tip.ID, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Update(ctx context.Context, tip wellness.Tip) error {
	steps, err := encodeSteps(tip.StepByStepGuide)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE wellness_tips
		SET title = ?, summary = ?, detailed_explanation = ?, step_by_step_guide = ?,
			category = ?, icon = ?, is_favorite = ?, is_current_generation = ?, created_at = ?
		WHERE id = ?
	`, tip.Title, tip.Summary, tip.DetailedExplanation, steps, tip.Category, tip.Icon,
		tip.IsFavorite, tip.IsCurrentGeneration, util.UnixMillis(tip.CreatedAt), tip.ID)
	return err
}

func (r *SQLiteRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE wellness_tips SET is_favorite = ? WHERE id = ?`, favorite, id)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM wellness_tips WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM wellness_tips`)
	return err
}

func (r *SQLiteRepository) MarkAllOldGeneration(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE wellness_tips SET is_current_generation = 0 WHERE is_current_generation = 1`)
	return err
}

func scanSQLiteTip(row rowScanner) (wellness.Tip, error) {
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

var _ wellness.TipRepository = (*SQLiteRepository)(nil)
