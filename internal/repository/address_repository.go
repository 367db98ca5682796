package repository

import (
    "database/sql"

    appErrors "github.com/janemutua/customer-records-backend/internal/errors"
    "github.com/janemutua/customer-records-backend/internal/model"
)

// AddressRepositoryInterface defines methods used by service
type AddressRepositoryInterface interface {
    ListByCustomer(customerID string) ([]model.Address, error)
    Update(id, addressLine, city, state, pinCode string) (*model.Address, error)
}

type AddressRepository struct {
    DB *sql.DB
}

const addressColumns = "address_id, customer_id, address_line, city, state, pin_code"

// ListByCustomer fetches all addresses referencing the customer, ordered by
// address_id for stable output. Zero rows is a valid result, not an error.
func (r *AddressRepository) ListByCustomer(customerID string) ([]model.Address, error) {
    query := `
        SELECT ` + addressColumns + `
        FROM addresses
        WHERE customer_id = $1
        ORDER BY address_id
    `
    rows, err := r.DB.Query(query, customerID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    addresses := []model.Address{}
    for rows.Next() {
        var a model.Address
        if err := rows.Scan(&a.AddressID, &a.CustomerID, &a.AddressLine, &a.City, &a.State, &a.PinCode); err != nil {
            return nil, err
        }
        addresses = append(addresses, a)
    }
    return addresses, rows.Err()
}

// Update replaces the four mutable address fields. The owning customer_id is
// never reassigned through this operation.
func (r *AddressRepository) Update(id, addressLine, city, state, pinCode string) (*model.Address, error) {
    query := `
        UPDATE addresses
        SET address_line=$1, city=$2, state=$3, pin_code=$4
        WHERE address_id=$5
        RETURNING ` + addressColumns

    var a model.Address
    err := r.DB.QueryRow(query, addressLine, city, state, pinCode, id).
        Scan(&a.AddressID, &a.CustomerID, &a.AddressLine, &a.City, &a.State, &a.PinCode)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewAddressNotFound(id)
        }
        return nil, appErrors.Classify(err)
    }
    return &a, nil
}

var _ AddressRepositoryInterface = (*AddressRepository)(nil)
