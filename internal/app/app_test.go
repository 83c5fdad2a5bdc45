package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasknest/internal/models"
	collectionservice "github.com/thenoetrevino/tasknest/internal/services/collection"
	taskservice "github.com/thenoetrevino/tasknest/internal/services/task"
	"github.com/thenoetrevino/tasknest/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)

	a := New(db)
	require.NotNil(t, a)
	assert.NotNil(t, a.CollectionService)
	assert.NotNil(t, a.TaskService)
	assert.NotNil(t, a.Repo())
	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Now)
}

func TestWithClock(t *testing.T) {
	fixed := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	a := New(testutil.SetupTestDB(t), WithClock(func() time.Time { return fixed }))

	assert.Equal(t, fixed, a.Now())
}

func TestServicesShareRepository(t *testing.T) {
	a := New(testutil.SetupTestDB(t))
	ctx := context.Background()

	c, err := a.CollectionService.CreateCollection(ctx, collectionservice.CreateCollectionRequest{
		Name:  "Perso",
		Color: models.ColorPoppy,
	})
	require.NoError(t, err)

	_, err = a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Content:      "Acheter du lait",
		CollectionID: c.ID,
	})
	require.NoError(t, err)

	tasks, err := a.Repo().GetTasksByCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
