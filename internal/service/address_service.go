// internal/service/address_service.go
package service

import (
    "log"
    "strings"
    "time"

    appErrors "github.com/janemutua/customer-records-backend/internal/errors"
    "github.com/janemutua/customer-records-backend/internal/model"
    "github.com/janemutua/customer-records-backend/internal/queue"
    "github.com/janemutua/customer-records-backend/internal/repository"
)

type AddressService struct {
    AddressRepo repository.AddressRepositoryInterface
    Queue       queue.Queue
}

// UpdateAddressInput carries the four mutable address fields. The owning
// customer is fixed for the address's lifetime.
type UpdateAddressInput struct {
    AddressLine string
    City        string
    State       string
    PinCode     string
}

// ListByCustomer returns every address on file for the customer. An empty
// list is a normal outcome for a customer with no addresses.
func (s *AddressService) ListByCustomer(customerID string) ([]model.Address, error) {
    return s.AddressRepo.ListByCustomer(customerID)
}

func (s *AddressService) UpdateAddress(id string, in UpdateAddressInput) (*model.Address, error) {
    required := []struct {
        name, value string
    }{
        {"address_line", in.AddressLine},
        {"city", in.City},
        {"state", in.State},
        {"pin_code", in.PinCode},
    }
    for _, f := range required {
        if strings.TrimSpace(f.value) == "" {
            return nil, appErrors.NewValidation(f.name)
        }
    }

    a, err := s.AddressRepo.Update(id, in.AddressLine, in.City, in.State, in.PinCode)
    if err != nil {
        return nil, err
    }

    if s.Queue != nil {
        evt := model.CustomerEvent{
            Type:       model.EventAddressUpdated,
            CustomerID: a.CustomerID,
            OccurredAt: time.Now().UTC(),
        }
        if err := s.Queue.Publish(queue.TopicCustomerEvents, evt); err != nil {
            log.Println("⚠️ failed to publish address.updated event:", err)
        }
    }

    return a, nil
}
