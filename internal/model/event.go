// internal/model/event.go
package model

import "time"

// Event types published to the customer_events queue whenever a record changes.
const (
    EventCustomerCreated = "customer.created"
    EventCustomerUpdated = "customer.updated"
    EventCustomerDeleted = "customer.deleted"
    EventAddressUpdated  = "address.updated"
)

type CustomerEvent struct {
    Type       string    `db:"event_type" json:"event_type"`
    CustomerID string    `db:"customer_id" json:"customer_id"`
    OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
}
