package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/testutil"
)

func TestUserRepository_UpsertByEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Name: "Ann", Email: "ann@example.com", CreatedAt: testutil.Now}
	require.NoError(t, repo.UpsertByEmail(ctx, first))
	require.NotZero(t, first.ID)

	second := &models.User{Name: "Annie", Email: "ann@example.com", CreatedAt: testutil.Now}
	require.NoError(t, repo.UpsertByEmail(ctx, second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Annie", second.Name)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_ListOrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	testutil.CreateUser(t, db, "Carol", "carol@example.com")
	testutil.CreateUser(t, db, "Alice", "alice@example.com")
	testutil.CreateUser(t, db, "Bob", "bob@example.com")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Equal(t, "Carol", users[2].Name)
}
