package helpdesk

import (
	"context"
	"fmt"
	"sync"
)

// InMemory is a Client backed by process memory. It exists for handler tests
// and local development without helpdesk credentials.
type InMemory struct {
	mu        sync.Mutex
	nextID    int
	customers map[string]*Customer // keyed by email
	threads   []CreateThreadInput

	// UpsertErr and CreateErr, when set, are returned by the corresponding
	// call instead of performing it.
	UpsertErr error
	CreateErr error
}

// NewInMemory returns an empty in-memory helpdesk.
func NewInMemory() *InMemory {
	return &InMemory{customers: make(map[string]*Customer)}
}

// UpsertCustomer creates the customer on first sight of the email and leaves
// existing records untouched, matching the empty-onUpdate contract.
func (m *InMemory) UpsertCustomer(_ context.Context, input UpsertCustomerInput) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpsertErr != nil {
		return nil, m.UpsertErr
	}

	email := input.Identifier.EmailAddress
	if c, ok := m.customers[email]; ok {
		copied := *c
		return &copied, nil
	}

	m.nextID++
	c := &Customer{
		ID:       fmt.Sprintf("c_%d", m.nextID),
		FullName: input.OnCreate.FullName,
		Email:    input.OnCreate.Email.Email,
	}
	m.customers[email] = c
	copied := *c
	return &copied, nil
}

// CreateThread records the thread and returns a fresh thread id.
func (m *InMemory) CreateThread(_ context.Context, input CreateThreadInput) (*Thread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	m.threads = append(m.threads, input)
	return &Thread{ID: fmt.Sprintf("th_%d", len(m.threads))}, nil
}

// Customer returns the stored customer for an email, or nil.
func (m *InMemory) Customer(email string) *Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.customers[email]; ok {
		copied := *c
		return &copied
	}
	return nil
}

// CustomerCount returns how many customers have been created.
func (m *InMemory) CustomerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.customers)
}

// Threads returns all recorded thread inputs in creation order.
func (m *InMemory) Threads() []CreateThreadInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CreateThreadInput, len(m.threads))
	copy(out, m.threads)
	return out
}
