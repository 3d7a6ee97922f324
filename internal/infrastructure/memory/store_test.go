package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
	"github.com/SumitSinghvi/invoice-bliss/internal/infrastructure/memory"
)

func seededStore() *memory.Store {
	customers, invoices := memory.Seed()
	return memory.NewStore(customers, invoices)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Collections and seed fixture
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_FixtureShape(t *testing.T) {
	customers, invoices := memory.Seed()
	require.Len(t, customers, 5)
	require.Len(t, invoices, 5)

	// Newest-first: INV-005 leads, INV-001 trails.
	assert.Equal(t, "INV-005", invoices[0].InvoiceNumber)
	assert.Equal(t, "INV-001", invoices[4].InvoiceNumber)

	// The reference invoice keeps the figures the mobile app shipped with.
	ref := invoices[4]
	assert.True(t, ref.Subtotal.Equal(dec("55000")), "subtotal %s", ref.Subtotal)
	assert.True(t, ref.TotalDiscount.Equal(dec("500")), "discount %s", ref.TotalDiscount)
	assert.True(t, ref.TotalTax.Equal(dec("9810")), "tax %s", ref.TotalTax)
	assert.True(t, ref.GrandTotal.Equal(dec("64310")), "grand total %s", ref.GrandTotal)
	assert.True(t, ref.Outstanding().IsZero(), "paid invoice has nothing outstanding")
}

func TestStore_AddPrepends(t *testing.T) {
	s := seededStore()

	s.AddCustomer(entity.Customer{ID: "c-new", Name: "Deepa Nair", Balance: decimal.Zero})
	s.AddInvoice(entity.Invoice{ID: "i-new", InvoiceNumber: "INV-006", Status: entity.StatusUnpaid})

	assert.Equal(t, "c-new", s.Customers()[0].ID, "new customers prepend")
	assert.Equal(t, "i-new", s.Invoices()[0].ID, "new invoices prepend")
	assert.Len(t, s.Invoices(), 6)
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	s := seededStore()

	snap := s.Invoices()
	snap[0] = entity.Invoice{ID: "clobbered"}

	assert.NotEqual(t, "clobbered", s.Invoices()[0].ID,
		"mutating a returned snapshot must not touch the store")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutations
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_UpdateInvoiceStatus(t *testing.T) {
	s := seededStore()
	inv, ok := s.GetInvoice("2")
	require.True(t, ok)
	require.Equal(t, entity.StatusUnpaid, inv.Status)

	paid := inv.GrandTotal
	s.UpdateInvoiceStatus("2", entity.StatusPaid, &paid)

	got, ok := s.GetInvoice("2")
	require.True(t, ok)
	assert.Equal(t, entity.StatusPaid, got.Status)
	assert.True(t, got.AmountPaid.Equal(paid))
}

func TestStore_UpdateInvoiceStatus_NilAmountLeavesPaidUnchanged(t *testing.T) {
	s := seededStore()
	before, _ := s.GetInvoice("4") // partial, 15 000 collected

	s.UpdateInvoiceStatus("4", entity.StatusOverdue, nil)

	got, _ := s.GetInvoice("4")
	assert.Equal(t, entity.StatusOverdue, got.Status)
	assert.True(t, got.AmountPaid.Equal(before.AmountPaid), "amount paid untouched when omitted")
}

func TestStore_UpdateInvoiceStatus_MissingIDIsNoOp(t *testing.T) {
	s := seededStore()
	before := s.Invoices()

	s.UpdateInvoiceStatus("no-such-id", entity.StatusPaid, nil)

	assert.Equal(t, before, s.Invoices())
}

func TestStore_DeleteInvoice(t *testing.T) {
	s := seededStore()

	s.DeleteInvoice("3")

	_, ok := s.GetInvoice("3")
	assert.False(t, ok, "deleted invoice must not be found")
	assert.Len(t, s.Invoices(), 4)
}

func TestStore_DeleteInvoice_MissingIDIsNoOp(t *testing.T) {
	s := seededStore()

	s.DeleteInvoice("no-such-id")

	assert.Len(t, s.Invoices(), 5, "collection unchanged, no error raised")
}

func TestStore_NextInvoiceNumber(t *testing.T) {
	s := seededStore()
	assert.Equal(t, "INV-006", s.NextInvoiceNumber())

	empty := memory.NewStore(nil, nil)
	assert.Equal(t, "INV-001", empty.NextInvoiceNumber())
}

// ──────────────────────────────────────────────────────────────────────────────
// Observers
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_SubscriberNotifiedOncePerMutation(t *testing.T) {
	s := seededStore()
	calls := 0
	unsub := s.Subscribe(func() { calls++ })

	s.AddCustomer(entity.Customer{ID: "c1"})
	s.AddInvoice(entity.Invoice{ID: "i1"})
	s.UpdateInvoiceStatus("i1", entity.StatusPaid, nil)
	s.DeleteInvoice("i1")
	require.Equal(t, 4, calls, "exactly one callback per mutation")

	unsub()
	s.AddCustomer(entity.Customer{ID: "c2"})
	assert.Equal(t, 4, calls, "no callbacks after unsubscribe")
}

func TestStore_SubscriberSeesMutationApplied(t *testing.T) {
	// Status and amount paid must change atomically as observed by a
	// subscriber notified afterward.
	s := seededStore()

	var observedStatus string
	var observedPaid decimal.Decimal
	s.Subscribe(func() {
		inv, ok := s.GetInvoice("5")
		require.True(t, ok)
		observedStatus = inv.Status
		observedPaid = inv.AmountPaid
	})

	paid := dec("57820")
	s.UpdateInvoiceStatus("5", entity.StatusPaid, &paid)

	assert.Equal(t, entity.StatusPaid, observedStatus)
	assert.True(t, observedPaid.Equal(paid))
}

func TestStore_UnsubscribeRemovesExactlyOneRegistration(t *testing.T) {
	s := seededStore()
	calls := 0
	fn := func() { calls++ }

	first := s.Subscribe(fn)
	_ = s.Subscribe(fn) // same callback, independent registration

	s.AddCustomer(entity.Customer{ID: "c1"})
	require.Equal(t, 2, calls)

	first()
	s.AddCustomer(entity.Customer{ID: "c2"})
	assert.Equal(t, 3, calls, "second registration still active")

	first() // double release is harmless
	s.AddCustomer(entity.Customer{ID: "c3"})
	assert.Equal(t, 4, calls)
}
