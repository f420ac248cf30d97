package customer

import "time"

const CreatedEventName = "CustomerCreatedEvent"

type CreatedEvent struct {
	Customer   Customer
	occurredAt time.Time
}

func NewCreatedEvent(c Customer) CreatedEvent {
	if c.Address != nil {
		address := *c.Address
		c.Address = &address
	}

	return CreatedEvent{
		Customer:   c,
		occurredAt: time.Now(),
	}
}

func (e CreatedEvent) EventName() string {
	return CreatedEventName
}

func (e CreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e CreatedEvent) Payload() any {
	return e.Customer
}
