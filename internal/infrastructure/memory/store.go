// Package memory implements the repository.Store contract over plain
// in-process slices. There is no persistence: the store is constructed with
// seed data and lives for the process.
package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/SumitSinghvi/invoice-bliss/internal/domain/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/repository"
)

// Store holds the customer and invoice collections, newest-first, plus the
// observer list. A single RWMutex guards all three: the original design
// assumed one logical thread, but this store sits behind an HTTP server, so
// every handler goroutine must see mutations fully applied or not at all.
type Store struct {
	mu          sync.RWMutex
	customers   []entity.Customer
	invoices    []entity.Invoice
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func()
}

var _ repository.Store = (*Store)(nil)

// NewStore builds a store pre-populated with the given collections. Both
// slices are copied; callers keep no handle into the store's state.
func NewStore(customers []entity.Customer, invoices []entity.Invoice) *Store {
	s := &Store{}
	s.Reset(customers, invoices)
	return s
}

// Reset replaces both collections wholesale without notifying observers.
// Intended for test setups that reuse one store across cases.
func (s *Store) Reset(customers []entity.Customer, invoices []entity.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append([]entity.Customer(nil), customers...)
	s.invoices = append([]entity.Invoice(nil), invoices...)
}

// Customers returns a snapshot copy of the customer collection, newest-first.
func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Customer(nil), s.customers...)
}

// Invoices returns a snapshot copy of the invoice collection, newest-first.
func (s *Store) Invoices() []entity.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Invoice(nil), s.invoices...)
}

// GetCustomer looks a customer up by id. First match in scan order wins if
// the caller ever supplied colliding ids.
func (s *Store) GetCustomer(id string) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// GetInvoice looks an invoice up by id.
func (s *Store) GetInvoice(id string) (entity.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return entity.Invoice{}, false
}

// AddCustomer prepends the customer and notifies observers. No uniqueness
// check of any kind; always succeeds.
func (s *Store) AddCustomer(c entity.Customer) {
	s.mu.Lock()
	s.customers = append([]entity.Customer{c}, s.customers...)
	s.mu.Unlock()
	s.notify()
}

// AddInvoice prepends the invoice and notifies observers. The embedded
// customer need not exist in the customer collection, and the totals are
// stored as given — the caller has already run the billing arithmetic.
func (s *Store) AddInvoice(inv entity.Invoice) {
	s.mu.Lock()
	s.invoices = append([]entity.Invoice{inv}, s.invoices...)
	s.mu.Unlock()
	s.notify()
}

// UpdateInvoiceStatus replaces the invoice's status and, when amountPaid is
// non-nil, its amount paid. A missing id is a silent no-op — observers are
// still notified, matching the contract that every mutating operation
// notifies.
func (s *Store) UpdateInvoiceStatus(id, status string, amountPaid *decimal.Decimal) {
	s.mu.Lock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices[i].Status = status
			if amountPaid != nil {
				s.invoices[i].AmountPaid = *amountPaid
			}
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// DeleteInvoice removes the invoice with the matching id; no-op if absent.
func (s *Store) DeleteInvoice(id string) {
	s.mu.Lock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// NextInvoiceNumber delegates to the billing package over the current
// invoice collection.
func (s *Store) NextInvoiceNumber() string {
	s.mu.RLock()
	numbers := make([]string, 0, len(s.invoices))
	for _, inv := range s.invoices {
		numbers = append(numbers, inv.InvoiceNumber)
	}
	s.mu.RUnlock()
	return billing.NextInvoiceNumber(numbers)
}

// Subscribe registers an observer called synchronously after every mutation.
// The returned function removes exactly that registration; registering the
// same callback twice yields two independent registrations.
func (s *Store) Subscribe(fn func()) repository.Unsubscribe {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.subscribers {
			if s.subscribers[i].id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// notify invokes every current subscriber outside the lock, so observers can
// re-read the collections without deadlocking.
func (s *Store) notify() {
	s.mu.RLock()
	subs := append([]subscriber(nil), s.subscribers...)
	s.mu.RUnlock()
	for _, sub := range subs {
		sub.fn()
	}
}
