package task

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/schema"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// taskJSON is the JSON shape of a task
type taskJSON struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	Expired      bool   `json:"expired"`
	Done         bool   `json:"done"`
	CreatedAt    string `json:"created_at"`
	CollectionID string `json:"collection_id"`
}

func toJSON(t *models.Task, now time.Time) taskJSON {
	return taskJSON{
		ID:           t.ID,
		Content:      t.Content,
		ExpiresAt:    schema.FormatDate(t.ExpiresAt),
		Expired:      t.Expired(now),
		Done:         t.Done,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		CollectionID: t.CollectionID,
	}
}
