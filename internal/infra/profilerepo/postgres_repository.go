package profilerepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
)

// PostgresRepository stores the profile using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var postgresUpsertSQL = func() string {
	sets := make([]string, 0, len(updatableColumns))
	placeholders := make([]string, 0, len(updatableColumns)+1)
	placeholders = append(placeholders, "$1")
	for i, col := range updatableColumns {
		sets = append(sets, col+" = EXCLUDED."+col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
	}
	return `INSERT INTO user_profiles (` + profileColumns + `) VALUES (` + strings.Join(placeholders, ", ") + `)
		ON CONFLICT (id) DO UPDATE SET ` + strings.Join(sets, ", ")
}()

// Get implements profile.Repository.
func (r *PostgresRepository) Get(ctx context.Context) (profile.UserProfile, bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE id = $1`, profile.SingletonID)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.UserProfile{}, false, nil
	}
	if err != nil {
		return profile.UserProfile{}, false, err
	}
	return p, true, nil
}

// Save implements profile.Repository.
func (r *PostgresRepository) Save(ctx context.Context, p profile.UserProfile) error {
	args, err := profileArgs(p)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, postgresUpsertSQL, args...)
	return err
}

// Delete implements profile.Repository.
func (r *PostgresRepository) Delete(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, profile.SingletonID)
	return err
}

var _ profile.Repository = (*PostgresRepository)(nil)
