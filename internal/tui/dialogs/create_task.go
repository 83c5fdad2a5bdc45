package dialogs

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/form"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/schema"
	taskservice "github.com/thenoetrevino/tasknest/internal/services/task"
	"github.com/thenoetrevino/tasknest/internal/tui/components"
	"github.com/thenoetrevino/tasknest/internal/tui/huhforms"
	"github.com/thenoetrevino/tasknest/internal/tui/layers"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

const (
	createTaskTitle       = "Ajoutez la tâche à la collection: "
	createTaskDescription = "Ajoutez une tâche à votre collection. Vous pouvez ajouter autant de tâches que vous le souhaitez à une collection."
	confirmLabel          = "Confirmer"
)

// CreateTaskResultMsg carries the outcome of a dispatched task creation
type CreateTaskResultMsg struct {
	Result workflow.Result[*models.Task]
}

// CreateTaskDialog is the centered modal that adds a task to a collection
type CreateTaskDialog struct {
	deps  Deps
	state *form.State[schema.TaskInput]
	flow  *workflow.Workflow[schema.TaskInput, *models.Task]

	collection *models.Collection
	// expires is the raw typed date, converted into the state on submit
	expires string
	form    *huh.Form
	open    bool
	width   int

	onOpenChange func(bool)
}

// NewCreateTaskDialog creates a closed dialog persisting through svc.
// onOpenChange is called whenever the dialog opens or closes.
func NewCreateTaskDialog(svc taskservice.Service, deps Deps, onOpenChange func(bool)) *CreateTaskDialog {
	d := &CreateTaskDialog{
		deps:         deps,
		state:        form.NewState(schema.TaskSchema, schema.TaskInput{}),
		onOpenChange: onOpenChange,
	}
	d.flow = workflow.New(workflow.Options[schema.TaskInput, *models.Task]{
		Action: func(ctx context.Context, in schema.TaskInput) (*models.Task, error) {
			return svc.CreateTask(ctx, taskservice.CreateTaskRequest{
				Content:      in.Content,
				ExpiresAt:    in.ExpiresAt,
				CollectionID: in.CollectionID,
			})
		},
		Notifier:   deps.Notifier,
		Refresher:  deps.Refresher,
		Logger:     deps.Logger,
		Success:    schema.TaskCreated,
		Failure:    schema.TaskCreateFailed,
		LogMessage: "Error while creating task",
		Normalize:  schema.TaskInput.Normalized,
		OnClose:    d.hide,
	})
	return d
}

// IsOpen reports whether the dialog is visible
func (d *CreateTaskDialog) IsOpen() bool {
	return d.open
}

// State exposes the form state
func (d *CreateTaskDialog) State() *form.State[schema.TaskInput] {
	return d.state
}

// Collection returns the collection new tasks are added to
func (d *CreateTaskDialog) Collection() *models.Collection {
	return d.collection
}

// SetWidth sizes the dialog for a screen of the given width
func (d *CreateTaskDialog) SetWidth(screenWidth int) {
	d.width = layers.DialogWidth(screenWidth)
	if d.form != nil {
		d.form = d.form.WithWidth(d.innerWidth())
	}
}

// Open shows the dialog for collection with an empty form
func (d *CreateTaskDialog) Open(collection *models.Collection) tea.Cmd {
	if collection == nil {
		return nil
	}
	d.collection = collection
	d.state.Reseed(schema.TaskInput{CollectionID: collection.ID})
	d.expires = ""
	d.open = true
	if d.onOpenChange != nil {
		d.onOpenChange(true)
	}
	return d.buildForm()
}

// Close hides the dialog and discards the entered values. A submission still
// in flight completes against a stale session and only notifies.
func (d *CreateTaskDialog) Close() {
	d.flow.Close(d.state)
	d.expires = ""
	d.hide()
}

func (d *CreateTaskDialog) hide() {
	wasOpen := d.open
	d.open = false
	d.form = nil
	if wasOpen && d.onOpenChange != nil {
		d.onOpenChange(false)
	}
}

// Update handles keys while open and submission results at any time
func (d *CreateTaskDialog) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(CreateTaskResultMsg); ok {
		if !d.flow.Complete(d.state, res.Result) && d.open && res.Result.Session == d.flow.Session() {
			return d.buildForm()
		}
		return nil
	}

	if !d.open || d.form == nil {
		return nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case isCancel(key.String()):
			d.Close()
			return nil
		case d.deps.SaveKey != "" && key.String() == d.deps.SaveKey:
			return d.submit()
		}
		if d.state.Submitting() {
			return nil
		}
	}

	model, cmd := d.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		return tea.Batch(cmd, d.submit())
	}
	return cmd
}

// submit validates and dispatches the form. Invalid input stays in the
// dialog with its errors shown.
func (d *CreateTaskDialog) submit() tea.Cmd {
	if d.state.Submitting() {
		return nil
	}

	if err := d.state.SetField(schema.FieldExpiresAt, d.expires); err != nil {
		return d.buildForm()
	}

	sub, err := d.flow.Begin(d.state)
	if err != nil {
		if errors.Is(err, workflow.ErrInvalid) {
			return d.buildForm()
		}
		return nil
	}

	ctx := d.deps.context()
	flow := d.flow
	return func() tea.Msg {
		return CreateTaskResultMsg{Result: flow.Dispatch(ctx, sub)}
	}
}

// buildForm recreates the huh form over the current values
func (d *CreateTaskDialog) buildForm() tea.Cmd {
	f := huhforms.CreateTaskForm(&d.state.Ptr().Content, &d.expires, d.describeExpiry)
	f = applyTheme(f, d.deps.Theme)
	if d.width > 0 {
		f = f.WithWidth(d.innerWidth())
	}
	d.form = f
	return f.Init()
}

func (d *CreateTaskDialog) describeExpiry() string {
	t, err := schema.ParseDate(d.expires)
	if err != nil {
		return ""
	}
	return components.ExpiryDescription(t)
}

func (d *CreateTaskDialog) innerWidth() int {
	// border and padding
	return max(d.width-4, 10)
}

func (d *CreateTaskDialog) gradient() palette.Gradient {
	if d.collection == nil {
		return palette.Neutral
	}
	return palette.Lookup(d.collection.Color)
}

// View renders the dialog, or an empty string when closed
func (d *CreateTaskDialog) View() string {
	if !d.open || d.form == nil || d.collection == nil {
		return ""
	}
	inner := d.innerWidth()
	gradient := d.gradient()

	header := components.TitleStyle().Render(createTaskTitle) + gradient.Render(d.collection.Name)
	description := components.SubtleStyle().Width(inner).Render(createTaskDescription)

	parts := []string{header, description, "", d.form.View()}
	if errs := renderFieldErrors(d.state.Errors(), schema.FieldContent, schema.FieldExpiresAt); errs != "" {
		parts = append(parts, errs)
	}
	parts = append(parts, "", components.RenderButton(confirmLabel, gradient, inner, d.state.Submitting()))

	return components.PanelStyle(gradient.From).
		Width(d.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Layer renders the dialog centered on a screen of the given size
func (d *CreateTaskDialog) Layer(screenWidth, screenHeight int) *lipgloss.Layer {
	return layers.CreateCenteredLayer(d.View(), screenWidth, screenHeight)
}
