package product

import "time"

const CreatedEventName = "ProductCreatedEvent"

type CreatedEvent struct {
	Product    Product
	occurredAt time.Time
}

func NewCreatedEvent(p Product) CreatedEvent {
	return CreatedEvent{Product: p, occurredAt: time.Now()}
}

func (e CreatedEvent) EventName() string {
	return CreatedEventName
}

func (e CreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e CreatedEvent) Payload() any {
	return e.Product
}
