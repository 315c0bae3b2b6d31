package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeEventType names a committed mutation that views may need to refresh on
type ChangeEventType string

// ChangeEventType constants
const (
	EventFieldCreated  ChangeEventType = "field.created"
	EventFieldUpdated  ChangeEventType = "field.updated"
	EventFieldDeleted  ChangeEventType = "field.deleted"
	EventOptionCreated ChangeEventType = "option.created"
	EventOptionUpdated ChangeEventType = "option.updated"
	EventOptionDeleted ChangeEventType = "option.deleted"
	EventValueSet      ChangeEventType = "value.set"
	EventValueDeleted  ChangeEventType = "value.deleted"
	EventEntityDeleted ChangeEventType = "entity.deleted"
	EventViewCreated   ChangeEventType = "view.created"
	EventViewUpdated   ChangeEventType = "view.updated"
	EventViewDeleted   ChangeEventType = "view.deleted"
)

// ChangeEvent is published after a mutation commits
type ChangeEvent struct {
	Type       ChangeEventType `json:"type"`
	EntityType EntityType      `json:"entityType,omitempty"`
	FieldID    *uuid.UUID      `json:"fieldId,omitempty"`
	EntityID   string          `json:"entityId,omitempty"`
	OptionID   *uuid.UUID      `json:"optionId,omitempty"`
	ViewID     *uuid.UUID      `json:"viewId,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// NewChangeEvent stamps an event with the current time
func NewChangeEvent(eventType ChangeEventType, entityType EntityType) ChangeEvent {
	return ChangeEvent{Type: eventType, EntityType: entityType, OccurredAt: time.Now().UTC()}
}

// WithField sets the field id
func (e ChangeEvent) WithField(id uuid.UUID) ChangeEvent {
	e.FieldID = &id
	return e
}

// WithOption sets the option id
func (e ChangeEvent) WithOption(id uuid.UUID) ChangeEvent {
	e.OptionID = &id
	return e
}

// WithView sets the saved view id
func (e ChangeEvent) WithView(id uuid.UUID) ChangeEvent {
	e.ViewID = &id
	return e
}

// WithEntity sets the entity id
func (e ChangeEvent) WithEntity(id string) ChangeEvent {
	e.EntityID = id
	return e
}
