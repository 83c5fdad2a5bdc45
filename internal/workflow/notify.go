package workflow

// Kind is the severity of a user notification
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Notifier shows a fire-and-forget message to the user
type Notifier interface {
	Notify(kind Kind, title, description string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(kind Kind, title, description string)

// Notify calls f
func (f NotifierFunc) Notify(kind Kind, title, description string) {
	f(kind, title, description)
}

// Refresher asks the hosting view to reload its data. Calling it repeatedly is safe.
type Refresher interface {
	Refresh()
}

// RefresherFunc adapts a function to Refresher
type RefresherFunc func()

// Refresh calls f
func (f RefresherFunc) Refresh() {
	f()
}

// Message is the title and description of a notification
type Message struct {
	Title       string
	Description string
}
