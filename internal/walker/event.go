package walker

import "github.com/mj1618/window-walker/internal/model"

// EventKind identifies what happened to a window during a walk.
type EventKind string

const (
	EventSwitch  EventKind = "switch"
	EventInject  EventKind = "inject"
	EventRestore EventKind = "restore"
	EventFailure EventKind = "failure"
)

// Event is emitted for every step of a walk, including dry-run previews.
type Event struct {
	Kind    EventKind
	Window  model.Window
	DryRun  bool
	Payload string
	Err     error
}

// Observer receives walk events as they happen.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
