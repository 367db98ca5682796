// internal/model/address.go
package model

type Address struct {
    AddressID   string `db:"address_id" json:"address_id"`
    CustomerID  string `db:"customer_id" json:"customer_id"`
    AddressLine string `db:"address_line" json:"address_line"`
    City        string `db:"city" json:"city"`
    State       string `db:"state" json:"state"`
    PinCode     string `db:"pin_code" json:"pin_code"`
}
