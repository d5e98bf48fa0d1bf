package profilerepo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
)

// SQLiteRepository stores the profile in the embedded database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository constructs the repository. The schema must already exist.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var sqliteUpsertSQL = func() string {
	sets := make([]string, 0, len(updatableColumns))
	for _, col := range updatableColumns {
		sets = append(sets, col+" = excluded."+col)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(updatableColumns)+1), ", ")
	return `INSERT INTO user_profiles (` + profileColumns + `) VALUES (` + placeholders + `)
		ON CONFLICT(id) DO UPDATE SET ` + strings.Join(sets, ", ")
}()

func (r *SQLiteRepository) Get(ctx context.Context) (profile.UserProfile, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE id = ?`, profile.SingletonID)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.UserProfile{}, false, nil
	}
	if err != nil {
		return profile.UserProfile{}, false, err
	}
	return p, true, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, p profile.UserProfile) error {
	args, err := profileArgs(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, sqliteUpsertSQL, args...)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE id = ?`, profile.SingletonID)
	return err
}

var _ profile.Repository = (*SQLiteRepository)(nil)
