// internal/controller/customer_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"
    "github.com/google/uuid"

    appErrors "github.com/janemutua/customer-records-backend/internal/errors"
    "github.com/janemutua/customer-records-backend/internal/service"
)

type CustomerController struct {
    CustomerService *service.CustomerService
}

// writeError maps the service error taxonomy onto HTTP statuses. Clients get
// a short message only; detail stays in the logs.
func writeError(w http.ResponseWriter, err error) {
    switch {
    case appErrors.IsValidation(err):
        http.Error(w, err.Error(), http.StatusBadRequest)
    case appErrors.IsNotFound(err):
        http.Error(w, err.Error(), http.StatusNotFound)
    case appErrors.IsConstraintViolation(err):
        http.Error(w, err.Error(), http.StatusConflict)
    default:
        http.Error(w, err.Error(), http.StatusInternalServerError)
    }
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(v)
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
    var body struct {
        FirstName   string `json:"first_name"`
        LastName    string `json:"last_name"`
        PhoneNumber string `json:"phone_number"`
        City        string `json:"city"`
        State       string `json:"state"`
        PinCode     string `json:"pin_code"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    customer, err := c.CustomerService.CreateCustomer(service.CreateCustomerInput{
        FirstName:   body.FirstName,
        LastName:    body.LastName,
        PhoneNumber: body.PhoneNumber,
        City:        body.City,
        State:       body.State,
        PinCode:     body.PinCode,
    })
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, customer)
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, err := uuid.Parse(id); err != nil {
        http.Error(w, "invalid customer id", http.StatusBadRequest)
        return
    }

    customer, err := c.CustomerService.GetCustomer(id)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, customer)
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, err := uuid.Parse(id); err != nil {
        http.Error(w, "invalid customer id", http.StatusBadRequest)
        return
    }

    var body struct {
        FirstName   string `json:"first_name"`
        LastName    string `json:"last_name"`
        PhoneNumber string `json:"phone_number"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    customer, err := c.CustomerService.UpdateCustomer(id, service.UpdateCustomerInput{
        FirstName:   body.FirstName,
        LastName:    body.LastName,
        PhoneNumber: body.PhoneNumber,
    })
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, customer)
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, err := uuid.Parse(id); err != nil {
        http.Error(w, "invalid customer id", http.StatusBadRequest)
        return
    }

    if err := c.CustomerService.DeleteCustomer(id); err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]string{
        "message": "Customer deleted successfully",
    })
}

// SearchCustomers filters by City, State and PinCode query parameters, all
// optional. limit and offset are accepted for page navigation.
func (c *CustomerController) SearchCustomers(w http.ResponseWriter, r *http.Request) {
    city := r.URL.Query().Get("City")
    state := r.URL.Query().Get("State")
    pinCode := r.URL.Query().Get("PinCode")
    limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
    offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

    customers, err := c.CustomerService.SearchCustomers(city, state, pinCode, limit, offset)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, customers)
}

func (c *CustomerController) CustomersWithOneAddress(w http.ResponseWriter, r *http.Request) {
    summaries, err := c.CustomerService.CustomersWithOneAddress()
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, summaries)
}
