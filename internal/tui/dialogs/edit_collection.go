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
	collectionservice "github.com/thenoetrevino/tasknest/internal/services/collection"
	"github.com/thenoetrevino/tasknest/internal/tui/components"
	"github.com/thenoetrevino/tasknest/internal/tui/huhforms"
	"github.com/thenoetrevino/tasknest/internal/tui/layers"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

const editCollectionTitle = "Modifier la collection: "

// EditCollectionResultMsg carries the outcome of a dispatched collection update
type EditCollectionResultMsg struct {
	Result workflow.Result[*models.Collection]
}

// EditCollectionSheet is the right-side panel that renames or recolors a collection
type EditCollectionSheet struct {
	deps  Deps
	state *form.State[schema.CollectionInput]
	flow  *workflow.Workflow[schema.CollectionInput, *models.Collection]

	collection *models.Collection
	form       *huh.Form
	open       bool
	width      int
	height     int

	onOpenChange func(bool)
}

// NewEditCollectionSheet creates a closed sheet persisting through svc
func NewEditCollectionSheet(svc collectionservice.Service, deps Deps, onOpenChange func(bool)) *EditCollectionSheet {
	s := &EditCollectionSheet{
		deps:         deps,
		state:        form.NewState(schema.CollectionSchema, schema.CollectionInput{}),
		onOpenChange: onOpenChange,
	}
	s.flow = workflow.New(workflow.Options[schema.CollectionInput, *models.Collection]{
		Action:     s.update(svc),
		Notifier:   deps.Notifier,
		Refresher:  deps.Refresher,
		Logger:     deps.Logger,
		Success:    schema.CollectionUpdated,
		Failure:    schema.CollectionUpdateFailed,
		LogMessage: "Error while updating collection",
		Normalize:  schema.CollectionInput.Normalized,
		OnClose:    s.hide,
	})
	return s
}

// update binds the action to the collection open at submission time
func (s *EditCollectionSheet) update(svc collectionservice.Service) workflow.Action[schema.CollectionInput, *models.Collection] {
	return func(ctx context.Context, in schema.CollectionInput) (*models.Collection, error) {
		return svc.UpdateCollection(ctx, in.ID, collectionservice.UpdateCollectionRequest{
			Name:  &in.Name,
			Color: &in.Color,
		})
	}
}

// IsOpen reports whether the sheet is visible
func (s *EditCollectionSheet) IsOpen() bool {
	return s.open
}

// State exposes the form state
func (s *EditCollectionSheet) State() *form.State[schema.CollectionInput] {
	return s.state
}

// SetSize sizes the sheet for a screen of the given dimensions
func (s *EditCollectionSheet) SetSize(screenWidth, screenHeight int) {
	s.width = layers.SheetWidth(screenWidth)
	s.height = screenHeight
	if s.form != nil {
		s.form = s.form.WithWidth(s.innerWidth())
	}
}

// Open shows the sheet seeded with the collection's current name and color
func (s *EditCollectionSheet) Open(collection *models.Collection) tea.Cmd {
	if collection == nil {
		return nil
	}
	s.collection = collection
	color := collection.Color
	if _, ok := palette.LookupOK(color); !ok {
		color = models.AllColorTags()[0]
	}
	s.state.Reseed(schema.CollectionInput{
		ID:    collection.ID,
		Name:  collection.Name,
		Color: color,
	})
	s.open = true
	if s.onOpenChange != nil {
		s.onOpenChange(true)
	}
	return s.buildForm()
}

// Close hides the sheet and restores the seeded values
func (s *EditCollectionSheet) Close() {
	s.flow.Close(s.state)
	s.hide()
}

func (s *EditCollectionSheet) hide() {
	wasOpen := s.open
	s.open = false
	s.form = nil
	if wasOpen && s.onOpenChange != nil {
		s.onOpenChange(false)
	}
}

// Update handles keys while open and submission results at any time
func (s *EditCollectionSheet) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(EditCollectionResultMsg); ok {
		if !s.flow.Complete(s.state, res.Result) && s.open && res.Result.Session == s.flow.Session() {
			return s.buildForm()
		}
		return nil
	}

	if !s.open || s.form == nil {
		return nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case isCancel(key.String()):
			s.Close()
			return nil
		case s.deps.SaveKey != "" && key.String() == s.deps.SaveKey:
			return s.submit()
		}
		if s.state.Submitting() {
			return nil
		}
	}

	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		return tea.Batch(cmd, s.submit())
	}
	return cmd
}

func (s *EditCollectionSheet) submit() tea.Cmd {
	if s.state.Submitting() {
		return nil
	}

	sub, err := s.flow.Begin(s.state)
	if err != nil {
		if errors.Is(err, workflow.ErrInvalid) {
			return s.buildForm()
		}
		return nil
	}

	ctx := s.deps.context()
	flow := s.flow
	return func() tea.Msg {
		return EditCollectionResultMsg{Result: flow.Dispatch(ctx, sub)}
	}
}

func (s *EditCollectionSheet) buildForm() tea.Cmd {
	values := s.state.Ptr()
	f := huhforms.CreateCollectionForm(&values.Name, &values.Color)
	f = applyTheme(f, s.deps.Theme)
	if s.width > 0 {
		f = f.WithWidth(s.innerWidth())
	}
	s.form = f
	return f.Init()
}

func (s *EditCollectionSheet) innerWidth() int {
	return max(s.width-4, 10)
}

// View renders the sheet, or an empty string when closed. The header keeps
// the saved name while the button previews the selected color.
func (s *EditCollectionSheet) View() string {
	if !s.open || s.form == nil || s.collection == nil {
		return ""
	}
	inner := s.innerWidth()
	selected := palette.Lookup(s.state.Values().Color)

	header := components.TitleStyle().Render(editCollectionTitle) +
		palette.Lookup(s.collection.Color).Render(s.collection.Name)

	parts := []string{header, "", s.form.View()}
	if errs := renderFieldErrors(s.state.Errors(), schema.FieldName, schema.FieldColor); errs != "" {
		parts = append(parts, errs)
	}
	parts = append(parts, "", components.RenderButton(confirmLabel, selected, inner, s.state.Submitting()))

	style := components.PanelStyle(selected.From).Width(s.width)
	if s.height > 2 {
		style = style.Height(s.height)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Layer renders the sheet against the right edge of a screen of the given width
func (s *EditCollectionSheet) Layer(screenWidth int) *lipgloss.Layer {
	return layers.CreateRightPanelLayer(s.View(), screenWidth)
}
