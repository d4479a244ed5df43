package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/majdya/classroom-backend/auth"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *pgRepo {
	return &pgRepo{pool: pool}
}

// Store implements Repo
func (r *pgRepo) Store(ctx context.Context, u User) error {
	insertQuery := `
		INSERT INTO users (id, username, email, role, bcrypt_pwd, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		u.ID,
		u.Username,
		u.Email,
		string(u.Role),
		u.BcryptPwd,
		u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Get implements Repo
func (r *pgRepo) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	selectQuery := `
		SELECT id, username, email, role, bcrypt_pwd, created_at
		FROM users
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, selectQuery, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

// List implements Repo
func (r *pgRepo) List(ctx context.Context) ([]User, error) {
	selectQuery := `
		SELECT id, username, email, role, bcrypt_pwd, created_at
		FROM users
	`
	rows, err := r.pool.Query(ctx, selectQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var all []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		all = append(all, *u)
	}
	return all, rows.Err()
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &role, &u.BcryptPwd, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = auth.Role(role)
	return &u, nil
}
