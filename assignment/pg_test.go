package assignment_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majdya/classroom-backend/assignment"
	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/user"
)

func newTestPgDb(t *testing.T) *pgxpool.Pool {
	t.Helper()

	conn, err := net.DialTimeout("tcp", "localhost:5432", 100*time.Millisecond)
	if err != nil {
		t.Skipf("postgres is not reachable: %v", err)
	}
	conn.Close()

	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       "postgres", // local dev pg user
		Password:   "postgres", // local dev pg password
		Host:       "localhost",
		Port:       "5432",
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New("../migrate")
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

// storeTestTeacher satisfies the created_by foreign key.
func storeTestTeacher(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	teacher := user.User{
		ID:        uuid.New(),
		Username:  "teacher-" + uuid.NewString()[:8],
		Email:     uuid.NewString()[:8] + "@example.com",
		Role:      auth.RoleTeacher,
		BcryptPwd: "$2a$10$fakehash",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, user.NewPgRepo(pool).Store(context.Background(), teacher))
	return teacher.ID
}

func newTestAssignment(creator uuid.UUID) assignment.Assignment {
	return assignment.Assignment{
		ID:          uuid.New(),
		Title:       "Essay",
		Description: "Write an essay",
		DueDate:     time.Now().Add(24 * time.Hour).UTC().Truncate(time.Microsecond),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		CreatedBy:   creator,
	}
}

func TestPgRepoStoreAndGet(t *testing.T) {
	pool := newTestPgDb(t)
	repo := assignment.NewPgRepo(pool)
	ctx := context.Background()
	teacherID := storeTestTeacher(t, pool)

	a := newTestAssignment(teacherID)
	require.NoError(t, repo.Store(ctx, a))

	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.Title, got.Title)
	assert.Equal(t, a.Description, got.Description)
	assert.True(t, a.DueDate.Equal(got.DueDate))
	assert.Equal(t, a.CreatedBy, got.CreatedBy)

	// unknown id yields nil, not an error
	got, err = repo.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPgRepoListByCreator(t *testing.T) {
	pool := newTestPgDb(t)
	repo := assignment.NewPgRepo(pool)
	ctx := context.Background()
	mine := storeTestTeacher(t, pool)
	other := storeTestTeacher(t, pool)

	require.NoError(t, repo.Store(ctx, newTestAssignment(mine)))
	require.NoError(t, repo.Store(ctx, newTestAssignment(mine)))
	require.NoError(t, repo.Store(ctx, newTestAssignment(other)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	owned, err := repo.ListByCreator(ctx, mine)
	require.NoError(t, err)
	assert.Len(t, owned, 2)
	for _, a := range owned {
		assert.Equal(t, mine, a.CreatedBy)
	}
}

func TestPgRepoUpdateAndDelete(t *testing.T) {
	pool := newTestPgDb(t)
	repo := assignment.NewPgRepo(pool)
	ctx := context.Background()
	teacherID := storeTestTeacher(t, pool)

	a := newTestAssignment(teacherID)
	require.NoError(t, repo.Store(ctx, a))

	a.Title = "Essay v2"
	a.Description = "updated"
	a.DueDate = a.DueDate.Add(24 * time.Hour)
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Essay v2", got.Title)
	assert.Equal(t, "updated", got.Description)

	require.NoError(t, repo.Delete(ctx, a.ID))
	got, err = repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
