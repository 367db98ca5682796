// internal/model/customer.go
package model

type Customer struct {
    CustomerID  string `db:"customer_id" json:"customer_id"`
    FirstName   string `db:"first_name" json:"first_name"`
    LastName    string `db:"last_name" json:"last_name"`
    PhoneNumber string `db:"phone_number" json:"phone_number"`
    City        string `db:"city" json:"city"`
    State       string `db:"state" json:"state"`
    PinCode     string `db:"pin_code" json:"pin_code"`
}

// CustomerSummary is the shape returned by the one-address aggregate query.
type CustomerSummary struct {
    CustomerID string `db:"customer_id" json:"customer_id"`
    FirstName  string `db:"first_name" json:"first_name"`
    LastName   string `db:"last_name" json:"last_name"`
}
