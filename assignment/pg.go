package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *pgRepo {
	return &pgRepo{pool: pool}
}

// Store implements Repo
func (r *pgRepo) Store(ctx context.Context, a Assignment) error {
	insertQuery := `
		INSERT INTO assignments (id, title, description, due_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		a.ID,
		a.Title,
		a.Description,
		a.DueDate,
		a.CreatedAt,
		a.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// Get implements Repo
func (r *pgRepo) Get(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	selectQuery := `
		SELECT id, title, description, due_date, created_at, created_by
		FROM assignments
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, selectQuery, id)
	a, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select assignment: %w", err)
	}
	return a, nil
}

// List implements Repo
func (r *pgRepo) List(ctx context.Context) ([]Assignment, error) {
	selectQuery := `
		SELECT id, title, description, due_date, created_at, created_by
		FROM assignments
		ORDER BY due_date ASC
	`
	rows, err := r.pool.Query(ctx, selectQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to select assignments: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// ListByCreator implements Repo
func (r *pgRepo) ListByCreator(ctx context.Context, creator uuid.UUID) ([]Assignment, error) {
	selectQuery := `
		SELECT id, title, description, due_date, created_at, created_by
		FROM assignments
		WHERE created_by = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, selectQuery, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to select assignments by creator: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// Update implements Repo. Only the mutable fields are written.
func (r *pgRepo) Update(ctx context.Context, a Assignment) error {
	updateQuery := `
		UPDATE assignments
		SET title = $2, description = $3, due_date = $4
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, updateQuery, a.ID, a.Title, a.Description, a.DueDate)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

// Delete implements Repo
func (r *pgRepo) Delete(ctx context.Context, id uuid.UUID) error {
	deleteQuery := `DELETE FROM assignments WHERE id = $1`
	_, err := r.pool.Exec(ctx, deleteQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

func scanAssignment(row pgx.Row) (*Assignment, error) {
	var a Assignment
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.DueDate, &a.CreatedAt, &a.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAssignments(rows pgx.Rows) ([]Assignment, error) {
	var all []Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		all = append(all, *a)
	}
	return all, rows.Err()
}
