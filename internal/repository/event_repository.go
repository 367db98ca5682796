package repository

import (
    "database/sql"
    "time"

    "github.com/janemutua/customer-records-backend/internal/model"
)

// EventRepositoryInterface is the sink for the customer change feed
type EventRepositoryInterface interface {
    Append(e *model.CustomerEvent) error
}

type EventRepository struct {
    DB *sql.DB
}

// Append inserts one event into the append-only log
func (r *EventRepository) Append(e *model.CustomerEvent) error {
    if e.OccurredAt.IsZero() {
        e.OccurredAt = time.Now().UTC()
    }
    query := `
        INSERT INTO customer_event_log (event_type, customer_id, occurred_at)
        VALUES ($1, $2, $3)
    `
    _, err := r.DB.Exec(query, e.Type, e.CustomerID, e.OccurredAt)
    return err
}

var _ EventRepositoryInterface = (*EventRepository)(nil)
