package component

import (
	"sync"

	"github.com/google/uuid"
)

// Event types emitted by the lifecycle engine.
const (
	// EventReady fires after a component's initialization completed
	// successfully. The payload is nil.
	EventReady = "ready"
	// EventError fires after a component's initialization failed. The
	// payload is the recorded error.
	EventError = "error"
)

// Event is what handlers receive.
type Event struct {
	Type    string
	Payload any
}

// Handler consumes events.
type Handler func(Event)

// Emitter is a small in-process event dispatcher. The zero value is ready to
// use. Base embeds one per component, so every component supports On, Off
// and Emit without further setup.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[string]map[string]Handler // event type -> token -> handler
	tokens   map[string]string             // token -> event type
}

// On subscribes a handler to an event type and returns its subscription
// token. Nil handlers are ignored and yield an empty token.
func (e *Emitter) On(event string, h Handler) string {
	if h == nil {
		return ""
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers == nil {
		e.handlers = make(map[string]map[string]Handler)
		e.tokens = make(map[string]string)
	}
	if e.handlers[event] == nil {
		e.handlers[event] = make(map[string]Handler)
	}

	token := uuid.NewString()
	e.handlers[event][token] = h
	e.tokens[token] = event
	return token
}

// Off removes the subscription identified by token. Unknown tokens are
// ignored.
func (e *Emitter) Off(token string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	event, ok := e.tokens[token]
	if !ok {
		return
	}
	delete(e.tokens, token)
	delete(e.handlers[event], token)
	if len(e.handlers[event]) == 0 {
		delete(e.handlers, event)
	}
}

// Emit dispatches an event to all handlers subscribed to its type. Handlers
// run synchronously on the calling goroutine, outside the emitter lock, so
// they may subscribe and unsubscribe freely.
func (e *Emitter) Emit(ev Event) {
	e.mu.RLock()
	snapshot := make([]Handler, 0, len(e.handlers[ev.Type]))
	for _, h := range e.handlers[ev.Type] {
		snapshot = append(snapshot, h)
	}
	e.mu.RUnlock()

	for _, h := range snapshot {
		h(ev)
	}
}
