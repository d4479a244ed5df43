package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type pairKey struct {
	assignmentID uuid.UUID
	studentID    uuid.UUID
}

type inMemRepo struct {
	mu     sync.RWMutex
	subms  map[uuid.UUID]Submission
	byPair map[pairKey]uuid.UUID
}

func NewInMemRepo() *inMemRepo {
	return &inMemRepo{
		subms:  make(map[uuid.UUID]Submission),
		byPair: make(map[pairKey]uuid.UUID),
	}
}

// Store implements Repo. The pair uniqueness check and the insert
// happen under one lock, mirroring the unique index in postgres.
func (r *inMemRepo) Store(ctx context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{s.AssignmentID, s.StudentID}
	if _, ok := r.byPair[key]; ok {
		return ErrDuplicate
	}
	r.subms[s.ID] = s
	r.byPair[key] = s.ID
	return nil
}

// Get implements Repo
func (r *inMemRepo) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.subms[id]; ok {
		return &s, nil
	}
	return nil, nil
}

// GetByPair implements Repo
func (r *inMemRepo) GetByPair(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.byPair[pairKey{assignmentID, studentID}]; ok {
		s := r.subms[id]
		return &s, nil
	}
	return nil, nil
}

// ListByStudent implements Repo
func (r *inMemRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Submission
	for _, s := range r.subms {
		if s.StudentID == studentID {
			res = append(res, s)
		}
	}
	return res, nil
}

// ListByAssignment implements Repo
func (r *inMemRepo) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Submission
	for _, s := range r.subms {
		if s.AssignmentID == assignmentID {
			res = append(res, s)
		}
	}
	return res, nil
}

// Update implements Repo
func (r *inMemRepo) Update(ctx context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[s.ID] = s
	return nil
}
