// internal/service/customer_service.go
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

type CustomerService struct {
    CustomerRepo repository.CustomerRepositoryInterface
    Queue        queue.Queue
}

// CreateCustomerInput carries the six required fields for a new customer
type CreateCustomerInput struct {
    FirstName   string
    LastName    string
    PhoneNumber string
    City        string
    State       string
    PinCode     string
}

// UpdateCustomerInput carries the three mutable customer fields. City, state
// and pin code are immutable after creation.
type UpdateCustomerInput struct {
    FirstName   string
    LastName    string
    PhoneNumber string
}

const maxSearchLimit = 100

func (s *CustomerService) CreateCustomer(in CreateCustomerInput) (*model.Customer, error) {
    required := []struct {
        name, value string
    }{
        {"first_name", in.FirstName},
        {"last_name", in.LastName},
        {"phone_number", in.PhoneNumber},
        {"city", in.City},
        {"state", in.State},
        {"pin_code", in.PinCode},
    }
    for _, f := range required {
        if strings.TrimSpace(f.value) == "" {
            return nil, appErrors.NewValidation(f.name)
        }
    }

    c := &model.Customer{
        FirstName:   in.FirstName,
        LastName:    in.LastName,
        PhoneNumber: in.PhoneNumber,
        City:        in.City,
        State:       in.State,
        PinCode:     in.PinCode,
    }

    if err := s.CustomerRepo.Create(c); err != nil {
        return nil, err
    }

    s.publish(model.EventCustomerCreated, c.CustomerID)
    return c, nil
}

func (s *CustomerService) GetCustomer(id string) (*model.Customer, error) {
    return s.CustomerRepo.GetByID(id)
}

func (s *CustomerService) UpdateCustomer(id string, in UpdateCustomerInput) (*model.Customer, error) {
    required := []struct {
        name, value string
    }{
        {"first_name", in.FirstName},
        {"last_name", in.LastName},
        {"phone_number", in.PhoneNumber},
    }
    for _, f := range required {
        if strings.TrimSpace(f.value) == "" {
            return nil, appErrors.NewValidation(f.name)
        }
    }

    c, err := s.CustomerRepo.Update(id, in.FirstName, in.LastName, in.PhoneNumber)
    if err != nil {
        return nil, err
    }

    s.publish(model.EventCustomerUpdated, c.CustomerID)
    return c, nil
}

func (s *CustomerService) DeleteCustomer(id string) error {
    if err := s.CustomerRepo.Delete(id); err != nil {
        return err
    }

    s.publish(model.EventCustomerDeleted, id)
    return nil
}

// SearchCustomers filters by any combination of city, state and pin code.
// All filters absent means the whole customer set.
func (s *CustomerService) SearchCustomers(city, state, pinCode string, limit, offset int) ([]model.Customer, error) {
    if limit < 0 {
        limit = 0
    }
    if limit > maxSearchLimit {
        limit = maxSearchLimit
    }
    if offset < 0 {
        offset = 0
    }
    return s.CustomerRepo.Search(city, state, pinCode, limit, offset)
}

func (s *CustomerService) CustomersWithOneAddress() ([]model.CustomerSummary, error) {
    return s.CustomerRepo.ListWithOneAddress()
}

// publish pushes a change event onto the queue. Event delivery is best
// effort; a queue failure never fails the request that caused it.
func (s *CustomerService) publish(eventType, customerID string) {
    if s.Queue == nil {
        return
    }
    evt := model.CustomerEvent{
        Type:       eventType,
        CustomerID: customerID,
        OccurredAt: time.Now().UTC(),
    }
    if err := s.Queue.Publish(queue.TopicCustomerEvents, evt); err != nil {
        log.Println("⚠️ failed to publish", eventType, "event:", err)
    }
}
