package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clitest "github.com/thenoetrevino/tasknest/internal/testutil/cli"
)

func TestSeedIsIdempotent(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	ctx := context.Background()

	created, err := Seed(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, len(demo), created)

	created, err = Seed(ctx, app)
	require.NoError(t, err)
	assert.Zero(t, created)

	summaries, err := app.CollectionService.GetCollectionSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, len(demo))

	total, done := 0, 0
	for _, s := range summaries {
		total += s.TaskCount
		done += s.DoneCount
	}
	assert.Equal(t, 7, total)
	assert.Equal(t, 1, done)
}

func TestSeedCommand(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, SeedCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "3 collections créées")
}
