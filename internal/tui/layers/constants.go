package layers

const (
	DialogMinWidth = 44
	DialogMaxWidth = 64

	SheetMinWidth = 40
	SheetMaxWidth = 56

	// DialogZ keeps dialogs above the base view and below toasts
	DialogZ = 5
)
