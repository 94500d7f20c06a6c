package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, role, created_at, updated_at
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepo) Create(ctx context.Context, username, role, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password_h, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, passwordHash, role).Scan(&id)
	return id, err
}

// Update changes username and role in a single statement; an admin row
// keeps its role no matter what was requested. An empty passwordHash
// leaves the stored credential as is.
func (r *UserRepo) Update(ctx context.Context, id int64, username, role, passwordHash string) (int64, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE users SET
			username   = $1,
			role       = CASE WHEN role = 'admin' THEN 'admin' ELSE $2 END,
			password_h = CASE WHEN $3 = '' THEN password_h ELSE $3 END,
			updated_at = now()
		WHERE id = $4
	`, username, role, passwordHash, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

// Delete skips admin rows entirely, so deleting an admin reports 0.
func (r *UserRepo) Delete(ctx context.Context, id int64) (int64, error) {
	ct, err := r.db.Exec(ctx, `
		DELETE FROM users WHERE id = $1 AND role <> 'admin'
	`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, string, error) {
	var u models.User
	var ph string
	err := r.db.QueryRow(ctx, `
		SELECT id, username, role, password_h, created_at, updated_at
		FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Role, &ph, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", err
	}
	return &u, ph, nil
}

// EnsureAdmin seeds the first admin account. The WHERE NOT EXISTS guard
// keeps the insert a no-op once any admin is present.
func (r *UserRepo) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (username, password_h, role)
		SELECT $1, $2, 'admin'
		WHERE NOT EXISTS (SELECT 1 FROM users WHERE role = 'admin')
	`, username, passwordHash)
	return err
}
