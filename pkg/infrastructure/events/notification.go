package events

import "time"

// Kind classifies a notification for the presentation collaborator
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

// String method for Kind enum
func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a fire-and-forget event description. There is no
// acknowledgment contract with handlers.
type Notification struct {
	Kind      Kind
	Title     string
	Message   string
	AutoClose bool
	Duration  time.Duration
	Time      time.Time
}

// Handler receives published notifications
type Handler interface {
	Handle(notification Notification)
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(Notification)

func (f HandlerFunc) Handle(n Notification) {
	f(n)
}
