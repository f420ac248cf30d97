package customer

import "time"

const AddressChangedEventName = "CustomerAddressChangedEvent"

type AddressChangedPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type AddressChangedEvent struct {
	AddressChangedPayload
	occurredAt time.Time
}

func NewAddressChangedEvent(c Customer) AddressChangedEvent {
	var address string
	if c.Address != nil {
		address = c.Address.String()
	}

	return AddressChangedEvent{
		AddressChangedPayload: AddressChangedPayload{
			ID:      c.ID,
			Name:    c.Name,
			Address: address,
		},
		occurredAt: time.Now(),
	}
}

func (e AddressChangedEvent) EventName() string {
	return AddressChangedEventName
}

func (e AddressChangedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e AddressChangedEvent) Payload() any {
	return e.AddressChangedPayload
}
