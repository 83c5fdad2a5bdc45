package collection

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasknest/internal/models"
)

// CollectionCmd returns the collection parent command
func CollectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// collectionJSON is the JSON shape of a collection
type collectionJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
	TaskCount *int   `json:"task_count,omitempty"`
	DoneCount *int   `json:"done_count,omitempty"`
}

func toJSON(c *models.Collection) collectionJSON {
	return collectionJSON{
		ID:        c.ID,
		Name:      c.Name,
		Color:     string(c.Color),
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func summaryToJSON(s *models.CollectionSummary) collectionJSON {
	out := toJSON(s.Collection)
	out.TaskCount = &s.TaskCount
	out.DoneCount = &s.DoneCount
	return out
}
