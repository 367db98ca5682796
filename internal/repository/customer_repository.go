package repository

import (
    "database/sql"
    "fmt"

    appErrors "github.com/janemutua/customer-records-backend/internal/errors"
    "github.com/janemutua/customer-records-backend/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
    Create(c *model.Customer) error
    GetByID(id string) (*model.Customer, error)
    Update(id, firstName, lastName, phoneNumber string) (*model.Customer, error)
    Delete(id string) error
    Search(city, state, pinCode string, limit, offset int) ([]model.Customer, error)
    ListWithOneAddress() ([]model.CustomerSummary, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
    DB *sql.DB
}

const customerColumns = "customer_id, first_name, last_name, phone_number, city, state, pin_code"

// Create inserts a customer and fills in the store-assigned ID
func (r *CustomerRepository) Create(c *model.Customer) error {
    query := `
        INSERT INTO customers (first_name, last_name, phone_number, city, state, pin_code)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING customer_id
    `
    err := r.DB.QueryRow(query, c.FirstName, c.LastName, c.PhoneNumber, c.City, c.State, c.PinCode).Scan(&c.CustomerID)
    if err != nil {
        return appErrors.Classify(err)
    }
    return nil
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(id string) (*model.Customer, error) {
    query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE customer_id = $1
    `
    row := r.DB.QueryRow(query, id)

    var c model.Customer
    if err := row.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.City, &c.State, &c.PinCode); err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCustomerNotFound(id)
        }
        return nil, err
    }
    return &c, nil
}

// Update changes the three mutable customer fields. City/state/pin_code are
// immutable after creation. Zero rows updated maps to not-found.
func (r *CustomerRepository) Update(id, firstName, lastName, phoneNumber string) (*model.Customer, error) {
    query := `
        UPDATE customers
        SET first_name=$1, last_name=$2, phone_number=$3
        WHERE customer_id=$4
        RETURNING ` + customerColumns

    var c model.Customer
    err := r.DB.QueryRow(query, firstName, lastName, phoneNumber, id).
        Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.City, &c.State, &c.PinCode)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCustomerNotFound(id)
        }
        return nil, appErrors.Classify(err)
    }
    return &c, nil
}

// Delete removes a customer row. Dependent addresses make the store reject
// the delete, which surfaces as a ConstraintViolation.
func (r *CustomerRepository) Delete(id string) error {
    res, err := r.DB.Exec(`DELETE FROM customers WHERE customer_id = $1`, id)
    if err != nil {
        return appErrors.Classify(err)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return appErrors.NewCustomerNotFound(id)
    }
    return nil
}

// Search filters customers by any combination of city, state and pin code.
// Empty strings impose no constraint; limit <= 0 means no limit.
func (r *CustomerRepository) Search(city, state, pinCode string, limit, offset int) ([]model.Customer, error) {
    query, args := buildSearchQuery(city, state, pinCode, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    customers := []model.Customer{}
    for rows.Next() {
        var c model.Customer
        if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.City, &c.State, &c.PinCode); err != nil {
            return nil, err
        }
        customers = append(customers, c)
    }
    return customers, rows.Err()
}

// buildSearchQuery composes the filtered query. Each present field appends an
// equality condition whose placeholder number is len(args) after the value is
// collected, so placeholder N always binds the Nth argument no matter which
// fields were supplied.
func buildSearchQuery(city, state, pinCode string, limit, offset int) (string, []interface{}) {
    query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
    args := []interface{}{}

    if city != "" {
        args = append(args, city)
        query += fmt.Sprintf(" AND city=$%d", len(args))
    }
    if state != "" {
        args = append(args, state)
        query += fmt.Sprintf(" AND state=$%d", len(args))
    }
    if pinCode != "" {
        args = append(args, pinCode)
        query += fmt.Sprintf(" AND pin_code=$%d", len(args))
    }

    if limit > 0 {
        args = append(args, limit)
        query += fmt.Sprintf(" LIMIT $%d", len(args))
    }
    if offset > 0 {
        args = append(args, offset)
        query += fmt.Sprintf(" OFFSET $%d", len(args))
    }

    return query, args
}

// ListWithOneAddress returns customers that have exactly one address on file.
// Zero addresses and two-or-more both fall outside the HAVING filter.
func (r *CustomerRepository) ListWithOneAddress() ([]model.CustomerSummary, error) {
    query := `
        SELECT c.customer_id, c.first_name, c.last_name
        FROM customers c
        LEFT JOIN addresses a ON c.customer_id = a.customer_id
        GROUP BY c.customer_id, c.first_name, c.last_name
        HAVING COUNT(a.address_id) = 1
    `
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    summaries := []model.CustomerSummary{}
    for rows.Next() {
        var s model.CustomerSummary
        if err := rows.Scan(&s.CustomerID, &s.FirstName, &s.LastName); err != nil {
            return nil, err
        }
        summaries = append(summaries, s)
    }
    return summaries, rows.Err()
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
