package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *pgRepo {
	return &pgRepo{pool: pool}
}

// Store implements Repo. A unique index on (assignment_id, student_id)
// turns concurrent duplicate submits into ErrDuplicate.
func (r *pgRepo) Store(ctx context.Context, s Submission) error {
	insertQuery := `
		INSERT INTO submissions (
			id, assignment_id, student_id, content, file_name, submitted_at,
			grade, graded_at, graded_by, comments
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		s.ID,
		s.AssignmentID,
		s.StudentID,
		s.Content,
		s.FileName,
		s.SubmittedAt,
		s.Grade,
		s.GradedAt,
		s.GradedBy,
		s.Comments,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// Get implements Repo
func (r *pgRepo) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	row := r.pool.QueryRow(ctx, selectSubmissionQuery+` WHERE id = $1`, id)
	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select submission: %w", err)
	}
	return s, nil
}

// GetByPair implements Repo
func (r *pgRepo) GetByPair(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error) {
	row := r.pool.QueryRow(ctx,
		selectSubmissionQuery+` WHERE assignment_id = $1 AND student_id = $2`,
		assignmentID, studentID)
	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select submission by pair: %w", err)
	}
	return s, nil
}

// ListByStudent implements Repo
func (r *pgRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]Submission, error) {
	rows, err := r.pool.Query(ctx,
		selectSubmissionQuery+` WHERE student_id = $1 ORDER BY submitted_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select submissions by student: %w", err)
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

// ListByAssignment implements Repo
func (r *pgRepo) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	rows, err := r.pool.Query(ctx,
		selectSubmissionQuery+` WHERE assignment_id = $1 ORDER BY submitted_at DESC`,
		assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select submissions by assignment: %w", err)
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

// Update implements Repo. Only the grading fields are mutable.
func (r *pgRepo) Update(ctx context.Context, s Submission) error {
	updateQuery := `
		UPDATE submissions
		SET grade = $2, graded_at = $3, graded_by = $4, comments = $5
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, updateQuery, s.ID, s.Grade, s.GradedAt, s.GradedBy, s.Comments)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

const selectSubmissionQuery = `
	SELECT id, assignment_id, student_id, content, file_name, submitted_at,
	       grade, graded_at, graded_by, comments
	FROM submissions
`

func scanSubmission(row pgx.Row) (*Submission, error) {
	var s Submission
	err := row.Scan(
		&s.ID, &s.AssignmentID, &s.StudentID, &s.Content, &s.FileName,
		&s.SubmittedAt, &s.Grade, &s.GradedAt, &s.GradedBy, &s.Comments,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSubmissions(rows pgx.Rows) ([]Submission, error) {
	var all []Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		all = append(all, *s)
	}
	return all, rows.Err()
}
