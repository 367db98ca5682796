package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	appErrors "github.com/janemutua/customer-records-backend/internal/errors"
	"github.com/janemutua/customer-records-backend/internal/model"
	"github.com/janemutua/customer-records-backend/internal/service"
)

// --- Mock repositories ---

type MockCustomerRepo struct {
	customers map[string]model.Customer
	deleteErr error

	lastLimit  int
	lastOffset int
}

func newMockCustomerRepo() *MockCustomerRepo {
	return &MockCustomerRepo{customers: map[string]model.Customer{}}
}

func (m *MockCustomerRepo) Create(c *model.Customer) error {
	c.CustomerID = uuid.NewString()
	m.customers[c.CustomerID] = *c
	return nil
}

func (m *MockCustomerRepo) GetByID(id string) (*model.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, appErrors.NewCustomerNotFound(id)
	}
	return &c, nil
}

func (m *MockCustomerRepo) Update(id, firstName, lastName, phoneNumber string) (*model.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, appErrors.NewCustomerNotFound(id)
	}
	c.FirstName = firstName
	c.LastName = lastName
	c.PhoneNumber = phoneNumber
	m.customers[id] = c
	return &c, nil
}

func (m *MockCustomerRepo) Delete(id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.customers[id]; !ok {
		return appErrors.NewCustomerNotFound(id)
	}
	delete(m.customers, id)
	return nil
}

func (m *MockCustomerRepo) Search(city, state, pinCode string, limit, offset int) ([]model.Customer, error) {
	m.lastLimit = limit
	m.lastOffset = offset

	out := []model.Customer{}
	for _, c := range m.customers {
		if city != "" && c.City != city {
			continue
		}
		if state != "" && c.State != state {
			continue
		}
		if pinCode != "" && c.PinCode != pinCode {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *MockCustomerRepo) ListWithOneAddress() ([]model.CustomerSummary, error) {
	return []model.CustomerSummary{}, nil
}

// MockQueue records published events
type MockQueue struct {
	published []model.CustomerEvent
	failWith  error
}

func (q *MockQueue) Publish(topic string, payload any) error {
	if q.failWith != nil {
		return q.failWith
	}
	evt, ok := payload.(model.CustomerEvent)
	if !ok {
		return errors.New("unexpected payload type")
	}
	q.published = append(q.published, evt)
	return nil
}

func (q *MockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

func validInput() service.CreateCustomerInput {
	return service.CreateCustomerInput{
		FirstName:   "Ann",
		LastName:    "Lee",
		PhoneNumber: "555-0100",
		City:        "Reno",
		State:       "NV",
		PinCode:     "89501",
	}
}

// --- Tests ---

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := newMockCustomerRepo()
	q := &MockQueue{}
	svc := &service.CustomerService{CustomerRepo: repo, Queue: q}

	created, err := svc.CreateCustomer(validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CustomerID == "" {
		t.Fatal("expected a store-assigned customer ID")
	}

	got, err := svc.GetCustomer(created.CustomerID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if *got != *created {
		t.Errorf("read row %+v does not match created row %+v", got, created)
	}

	if len(q.published) != 1 || q.published[0].Type != model.EventCustomerCreated {
		t.Errorf("expected one customer.created event, got %+v", q.published)
	}
	if q.published[0].CustomerID != created.CustomerID {
		t.Errorf("event carries customer %s, want %s", q.published[0].CustomerID, created.CustomerID)
	}
}

func TestCreateCustomerMissingField(t *testing.T) {
	fields := []struct {
		name  string
		blank func(*service.CreateCustomerInput)
	}{
		{"first_name", func(in *service.CreateCustomerInput) { in.FirstName = "" }},
		{"last_name", func(in *service.CreateCustomerInput) { in.LastName = "  " }},
		{"phone_number", func(in *service.CreateCustomerInput) { in.PhoneNumber = "" }},
		{"city", func(in *service.CreateCustomerInput) { in.City = "" }},
		{"state", func(in *service.CreateCustomerInput) { in.State = "" }},
		{"pin_code", func(in *service.CreateCustomerInput) { in.PinCode = "" }},
	}

	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			repo := newMockCustomerRepo()
			svc := &service.CustomerService{CustomerRepo: repo}

			in := validInput()
			f.blank(&in)

			_, err := svc.CreateCustomer(in)
			if !appErrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), f.name) {
				t.Errorf("error %q does not name field %s", err.Error(), f.name)
			}
			if len(repo.customers) != 0 {
				t.Error("no row should be inserted on validation failure")
			}
		})
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := &service.CustomerService{CustomerRepo: newMockCustomerRepo()}

	_, err := svc.GetCustomer(uuid.NewString())
	if !appErrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUpdateCustomer(t *testing.T) {
	repo := newMockCustomerRepo()
	q := &MockQueue{}
	svc := &service.CustomerService{CustomerRepo: repo, Queue: q}

	created, err := svc.CreateCustomer(validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateCustomer(created.CustomerID, service.UpdateCustomerInput{
		FirstName:   "Anne",
		LastName:    "Leigh",
		PhoneNumber: "555-0199",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.FirstName != "Anne" || updated.LastName != "Leigh" || updated.PhoneNumber != "555-0199" {
		t.Errorf("mutable fields not applied: %+v", updated)
	}
	// City/state/pin are immutable through this operation.
	if updated.City != "Reno" || updated.State != "NV" || updated.PinCode != "89501" {
		t.Errorf("immutable fields changed: %+v", updated)
	}

	if len(q.published) != 2 || q.published[1].Type != model.EventCustomerUpdated {
		t.Errorf("expected customer.updated event, got %+v", q.published)
	}
}

func TestUpdateCustomerNotFound(t *testing.T) {
	svc := &service.CustomerService{CustomerRepo: newMockCustomerRepo()}

	_, err := svc.UpdateCustomer(uuid.NewString(), service.UpdateCustomerInput{
		FirstName:   "Anne",
		LastName:    "Leigh",
		PhoneNumber: "555-0199",
	})
	if !appErrors.IsNotFound(err) {
		t.Fatalf("expected not-found on updating a missing id, got %v", err)
	}
}

func TestUpdateCustomerValidation(t *testing.T) {
	svc := &service.CustomerService{CustomerRepo: newMockCustomerRepo()}

	_, err := svc.UpdateCustomer(uuid.NewString(), service.UpdateCustomerInput{
		FirstName: "Anne",
		LastName:  "Leigh",
	})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error for blank phone_number, got %v", err)
	}
}

func TestDeleteCustomerConstraintViolation(t *testing.T) {
	repo := newMockCustomerRepo()
	repo.deleteErr = &appErrors.ConstraintViolation{Constraint: "addresses_customer_id_fkey"}
	q := &MockQueue{}
	svc := &service.CustomerService{CustomerRepo: repo, Queue: q}

	err := svc.DeleteCustomer(uuid.NewString())
	if !appErrors.IsConstraintViolation(err) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
	if len(q.published) != 0 {
		t.Error("no event should be published for a failed delete")
	}
}

func TestDeleteCustomerPublishesEvent(t *testing.T) {
	repo := newMockCustomerRepo()
	q := &MockQueue{}
	svc := &service.CustomerService{CustomerRepo: repo, Queue: q}

	created, err := svc.CreateCustomer(validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteCustomer(created.CustomerID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	last := q.published[len(q.published)-1]
	if last.Type != model.EventCustomerDeleted || last.CustomerID != created.CustomerID {
		t.Errorf("unexpected final event: %+v", last)
	}
}

func TestCreateSucceedsWhenQueuePublishFails(t *testing.T) {
	repo := newMockCustomerRepo()
	q := &MockQueue{failWith: errors.New("broker down")}
	svc := &service.CustomerService{CustomerRepo: repo, Queue: q}

	created, err := svc.CreateCustomer(validInput())
	if err != nil {
		t.Fatalf("create must not fail on publish error, got %v", err)
	}
	if _, ok := repo.customers[created.CustomerID]; !ok {
		t.Error("row should still be inserted")
	}
}

func TestSearchCustomersFiltersByEquality(t *testing.T) {
	repo := newMockCustomerRepo()
	svc := &service.CustomerService{CustomerRepo: repo}

	nv, _ := svc.CreateCustomer(validInput())
	ca := validInput()
	ca.City = "Sacramento"
	ca.State = "CA"
	ca.PinCode = "94203"
	if _, err := svc.CreateCustomer(ca); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.SearchCustomers("", "NV", "", 0, 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 1 || got[0].CustomerID != nv.CustomerID {
		t.Errorf("State=NV should match exactly the NV customer, got %+v", got)
	}

	none, err := svc.SearchCustomers("", "TX", "", 0, 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("State=TX should match nothing, got %+v", none)
	}

	all, err := svc.SearchCustomers("", "", "", 0, 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("no filters should return all customers, got %d", len(all))
	}
}

func TestSearchCustomersClampsLimit(t *testing.T) {
	repo := newMockCustomerRepo()
	svc := &service.CustomerService{CustomerRepo: repo}

	if _, err := svc.SearchCustomers("", "", "", 1000, -5); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if repo.lastLimit != 100 {
		t.Errorf("limit should be clamped to 100, repo saw %d", repo.lastLimit)
	}
	if repo.lastOffset != 0 {
		t.Errorf("negative offset should be normalized to 0, repo saw %d", repo.lastOffset)
	}
}
