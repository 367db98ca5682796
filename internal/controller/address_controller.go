// internal/controller/address_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/google/uuid"

    "github.com/janemutua/customer-records-backend/internal/service"
)

type AddressController struct {
    AddressService *service.AddressService
}

// ListCustomerAddresses serves GET /customers/{id}/addresses
func (c *AddressController) ListCustomerAddresses(w http.ResponseWriter, r *http.Request) {
    customerID := chi.URLParam(r, "id")
    if _, err := uuid.Parse(customerID); err != nil {
        http.Error(w, "invalid customer id", http.StatusBadRequest)
        return
    }

    addresses, err := c.AddressService.ListByCustomer(customerID)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, addresses)
}

// UpdateAddress serves PUT /addresses/{id}
func (c *AddressController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, err := uuid.Parse(id); err != nil {
        http.Error(w, "invalid address id", http.StatusBadRequest)
        return
    }

    var body struct {
        AddressLine string `json:"address_line"`
        City        string `json:"city"`
        State       string `json:"state"`
        PinCode     string `json:"pin_code"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    address, err := c.AddressService.UpdateAddress(id, service.UpdateAddressInput{
        AddressLine: body.AddressLine,
        City:        body.City,
        State:       body.State,
        PinCode:     body.PinCode,
    })
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, address)
}
