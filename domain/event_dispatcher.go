package domain

import (
	"errors"
	"time"
)

// ErrDispatch marks a change that was stored but whose event handlers
// failed.
var ErrDispatch = errors.New("event dispatch failed")

// Event is an immutable record of something that happened in the domain.
// EventName is the routing key used by an EventDispatcher and must be
// declared explicitly by every event kind.
type Event interface {
	EventName() string
	OccurredAt() time.Time
	Payload() any
}

// EventHandler reacts to a single event. Handlers are matched by identity on
// Unregister, so implementations are expected to be used through pointers.
type EventHandler interface {
	Handle(event Event) error
}

type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Unregister(eventName string, handler EventHandler)
	UnregisterAll()
	Notify(event Event) error
	Handlers() map[string][]EventHandler
}

type event struct {
	name       string
	occurredAt time.Time
	payload    any
}

// NewEvent builds a generic event stamped with the current time.
func NewEvent(name string, payload any) Event {
	return event{
		name:       name,
		occurredAt: time.Now(),
		payload:    payload,
	}
}

func (e event) EventName() string {
	return e.name
}

func (e event) OccurredAt() time.Time {
	return e.occurredAt
}

func (e event) Payload() any {
	return e.payload
}
