package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// It lives in its own package so service tests can import testutil
// without pulling in the CLI.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// CreateTestCollection wraps testutil.CreateTestCollection for CLI tests
func CreateTestCollection(t *testing.T, db *sql.DB, name string, color models.ColorTag) string {
	t.Helper()
	return testutil.CreateTestCollection(t, db, name, color)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, collectionID, content string) string {
	t.Helper()
	return testutil.CreateTestTask(t, db, collectionID, content)
}
