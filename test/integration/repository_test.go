package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postRepository "github.com/allisson/blog/internal/post/repository"
	"github.com/allisson/blog/internal/testutil"
	userRepository "github.com/allisson/blog/internal/user/repository"
)

// TestIntegration_PostgreSQLRepositories runs the repositories against a real
// PostgreSQL schema, covering behavior sqlmock cannot: actual column
// projections and ORDER BY semantics.
func TestIntegration_PostgreSQLRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	ctx := context.Background()
	authorID := testutil.CreateTestUser(t, db, "postgres", "author@example.com")

	t.Run("user default read excludes password column", func(t *testing.T) {
		repo := userRepository.NewPostgreSQLUserRepository(db)

		user, err := repo.GetByID(ctx, authorID)
		require.NoError(t, err)
		assert.Equal(t, "author@example.com", user.Email)
		assert.Empty(t, user.Password)

		withPassword, err := repo.GetByEmailWithPassword(ctx, "author@example.com")
		require.NoError(t, err)
		assert.Equal(t, "test-password-hash", withPassword.Password)
	})

	t.Run("post list returns newest first", func(t *testing.T) {
		first := testutil.CreateTestPost(t, db, "postgres", authorID, "older post")
		second := testutil.CreateTestPost(t, db, "postgres", authorID, "newer post")

		repo := postRepository.NewPostgreSQLPostRepository(db)

		posts, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, second, posts[0].ID)
		assert.Equal(t, first, posts[1].ID)
	})
}

// TestIntegration_MySQLRepositories exercises the BINARY(16) identifier
// round-trip that the unit tests only simulate.
func TestIntegration_MySQLRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)

	ctx := context.Background()
	authorID := testutil.CreateTestUser(t, db, "mysql", "author@example.com")

	repo := postRepository.NewMySQLPostRepository(db)
	postID := testutil.CreateTestPost(t, db, "mysql", authorID, "mysql post")

	post, err := repo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	assert.Equal(t, authorID, post.AuthorID)

	userRepo := userRepository.NewMySQLUserRepository(db)
	user, err := userRepo.GetByID(ctx, authorID)
	require.NoError(t, err)
	assert.Equal(t, authorID, user.ID)
	assert.Empty(t, user.Password)
}
