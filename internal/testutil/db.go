package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/tasknest/internal/database"
	"github.com/thenoetrevino/tasknest/internal/models"
	_ "modernc.org/sqlite"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestCollection inserts a collection and returns its ID
func CreateTestCollection(t *testing.T, db *sql.DB, name string, color models.ColorTag) string {
	t.Helper()
	c, err := database.NewRepository(db).CreateCollection(context.Background(), name, color)
	if err != nil {
		t.Fatalf("Failed to create test collection: %v", err)
	}
	return c.ID
}

// CreateTestTask inserts a task without expiration and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, collectionID, content string) string {
	t.Helper()
	task, err := database.NewRepository(db).CreateTask(context.Background(), content, nil, collectionID)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}
