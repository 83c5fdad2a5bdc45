package schema

import "github.com/thenoetrevino/tasknest/internal/workflow"

// Notifications shown once a submission settles. The dialogs and the CLI
// share them so both surfaces report the same outcome.
var (
	TaskCreated = workflow.Message{
		Title:       "Succès",
		Description: "La tâche a été créée avec succès",
	}
	TaskCreateFailed = workflow.Message{
		Title:       "Erreur",
		Description: "Impossible de créer un tâche",
	}

	CollectionCreated = workflow.Message{
		Title:       "Succès",
		Description: "La collection a été créée avec succès",
	}
	CollectionCreateFailed = workflow.Message{
		Title:       "Erreur",
		Description: "Impossible de créer la collection",
	}

	CollectionUpdated = workflow.Message{
		Title:       "Succès",
		Description: "La collection a été modifiée avec succès",
	}
	CollectionUpdateFailed = workflow.Message{
		Title:       "Erreur",
		Description: "une erreur s'est produit, veuillez réessayer plus tard",
	}
)
