package purchasing

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededStores(t *testing.T) (*Store[*Order], *Store[*Bill]) {
	t.Helper()
	orders := NewOrderStore(discardLogger())
	bills := NewBillStore(discardLogger())
	require.NoError(t, SeedStores(orders, bills))
	return orders, bills
}

func validOrder() *Order {
	o := NewOrderDraft(NewDate(2024, time.May, 2))
	o.Number = "PO-2024-010"
	o.SupplierID = "SUP003"
	o.SupplierReference = "REF-010"
	o.ExpectedDeliveryDate = NewDate(2024, time.May, 20)
	return o
}

func validBill() *Bill {
	b := NewBillDraft(NewDate(2024, time.May, 2))
	b.Number = "PB-2024-010"
	b.BillNumber = "BILL-010"
	b.ExpectedDeliveryDate = NewDate(2024, time.May, 20)
	b.DueDate = NewDate(2024, time.June, 1)
	return b
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func TestSeedStores(t *testing.T) {
	orders, bills := seededStores(t)
	require.Equal(t, 2, orders.Len())
	require.Equal(t, 2, bills.Len())

	po, err := orders.Get("#PO001")
	require.NoError(t, err)
	require.Equal(t, KindOrder, po.Kind())
	require.Equal(t, "659.90", po.GrandTotal.StringFixed(2))
	require.Len(t, po.LineItems, 1)

	pb, err := bills.Get("#PB002")
	require.NoError(t, err)
	require.Equal(t, PaymentPartial, pb.PaymentStatus)
	require.Equal(t, "714.95", pb.GrandTotal.StringFixed(2))
	require.Equal(t, "357.47", pb.Balance().StringFixed(2))
	require.Equal(t, PaymentPartial, pb.DerivedPaymentStatus())
}

func TestStoreCreateAssignsFreshID(t *testing.T) {
	orders, _ := seededStores(t)

	created, err := orders.Create(validOrder())
	require.NoError(t, err)
	require.Equal(t, "#PO003", created.ID)

	next, err := orders.Create(validOrder())
	require.NoError(t, err)
	require.Equal(t, "#PO004", next.ID)

	seen := map[string]bool{}
	for _, o := range orders.List() {
		require.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}
}

func TestStoreSeedAdvancesCounterPastGaps(t *testing.T) {
	orders := NewOrderStore(discardLogger())
	seed := validOrder()
	seed.ID = "#PO007"
	require.NoError(t, orders.Seed(seed))

	created, err := orders.Create(validOrder())
	require.NoError(t, err)
	require.Equal(t, "#PO008", created.ID)

	require.ErrorIs(t, orders.Seed(seed), ErrDuplicateID)
}

func TestStoreCreateRejectsInvalidDraft(t *testing.T) {
	orders := NewOrderStore(discardLogger())
	draft := validOrder()
	draft.Number = ""

	_, err := orders.Create(draft)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "required", verr.Fields["number"])
	require.ErrorIs(t, err, ErrValidation)
	require.Zero(t, orders.Len())
}

func TestStoreCreateDoesNotAliasCaller(t *testing.T) {
	orders := NewOrderStore(discardLogger())
	draft := validOrder()
	draft.LineItems = []LineItem{{ID: "LI1", Quantity: 2, UnitPrice: decimal.RequireFromString("3")}}

	created, err := orders.Create(draft)
	require.NoError(t, err)
	draft.LineItems[0].Quantity = 99

	stored, err := orders.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.LineItems[0].Quantity)
	require.Empty(t, draft.ID)
}

func TestStoreCreateDerivesTotals(t *testing.T) {
	orders := NewOrderStore(discardLogger())
	draft := validOrder()
	draft.LineItems = []LineItem{{ID: "LI1", Quantity: 10, UnitPrice: decimal.RequireFromString("59.99")}}
	draft.TotalAmount = decimal.NewFromInt(1)
	draft.TaxAmount = decimal.NewFromInt(60)
	draft.GrandTotal = decimal.NewFromInt(5)

	created, err := orders.Create(draft)
	require.NoError(t, err)
	require.Equal(t, "599.90", created.TotalAmount.StringFixed(2))
	require.Equal(t, "659.90", created.GrandTotal.StringFixed(2))
}

func TestBillWithoutLinesKeepsCallerTotal(t *testing.T) {
	bills := NewBillStore(discardLogger())
	draft := validBill()
	draft.TaxAmount = decimal.NewFromInt(60)

	created, err := bills.Create(draft)
	require.NoError(t, err)
	require.Empty(t, created.LineItems)
	require.NotNil(t, created.LineItems)
	require.True(t, created.TotalAmount.IsZero())
	require.Equal(t, "60.00", created.GrandTotal.StringFixed(2))

	draft.TotalAmount = decimal.NewFromInt(40)
	created, err = bills.Create(draft)
	require.NoError(t, err)
	require.Equal(t, "100.00", created.GrandTotal.StringFixed(2))
}

func TestStoreUpdateLeavesAbsentFieldsUntouched(t *testing.T) {
	orders, _ := seededStores(t)
	before, err := orders.Get("#PO002")
	require.NoError(t, err)

	notes := "Call before delivery"
	status := StatusSent
	after, err := orders.Update("#PO002", OrderPatch{HeaderPatch: HeaderPatch{Notes: &notes, Status: &status}})
	require.NoError(t, err)

	require.Equal(t, notes, after.Notes)
	require.Equal(t, StatusSent, after.Status)

	after.Notes = before.Notes
	after.Status = before.Status
	require.JSONEq(t, mustJSON(t, before), mustJSON(t, after))
}

func TestStoreUpdateRecomputesTotalsFromPatchedLines(t *testing.T) {
	orders, _ := seededStores(t)
	lines := []LineItem{{ID: "LI9", Quantity: 2, UnitPrice: decimal.RequireFromString("10")}}

	after, err := orders.Update("#PO001", OrderPatch{HeaderPatch: HeaderPatch{LineItems: lines}})
	require.NoError(t, err)
	require.Equal(t, "20.00", after.TotalAmount.StringFixed(2))
	require.Equal(t, "80.00", after.GrandTotal.StringFixed(2))
	require.Equal(t, "#PO001", after.ID)
}

func TestStoreUpdateClearingLinesResetsTotal(t *testing.T) {
	orders, _ := seededStores(t)
	after, err := orders.Update("#PO001", OrderPatch{HeaderPatch: HeaderPatch{LineItems: []LineItem{}}})
	require.NoError(t, err)
	require.Empty(t, after.LineItems)
	require.True(t, after.TotalAmount.IsZero())
	require.Equal(t, "60.00", after.GrandTotal.StringFixed(2))
}

func TestStoreUpdateRequiresPatch(t *testing.T) {
	orders, _ := seededStores(t)
	before, err := orders.Get("#PO001")
	require.NoError(t, err)

	_, err = orders.Update("#PO001", nil)
	require.ErrorIs(t, err, ErrValidation)

	after, err := orders.Get("#PO001")
	require.NoError(t, err)
	require.JSONEq(t, mustJSON(t, before), mustJSON(t, after))
}

func TestStoreUpdateUnknownID(t *testing.T) {
	orders, _ := seededStores(t)
	_, err := orders.Update("#PO999", OrderPatch{})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = orders.Get("#PO999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdateRejectsOverpayment(t *testing.T) {
	_, bills := seededStores(t)
	paid := decimal.NewFromInt(10000)

	_, err := bills.Update("#PB002", BillPatch{PaidAmount: &paid})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "lte_grand_total", verr.Fields["paidAmount"])

	stored, err := bills.Get("#PB002")
	require.NoError(t, err)
	require.Equal(t, "357.48", stored.PaidAmount.StringFixed(2))
}

func TestStoreReturnsCopies(t *testing.T) {
	orders, _ := seededStores(t)
	listed := orders.List()
	listed[0].Number = "tampered"
	listed[0].LineItems[0].Quantity = 1000

	got, err := orders.Get(listed[0].ID)
	require.NoError(t, err)
	require.Equal(t, "PO-2024-001", got.Number)
	require.Equal(t, 10, got.LineItems[0].Quantity)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	orders, bills := seededStores(t)

	matched := bills.Filter(BillSearch("ref-001"))
	require.Len(t, matched, 1)
	require.Equal(t, "REF-001", matched[0].SupplierReference)

	require.Len(t, bills.Filter(BillSearch("PARt")), 1)
	require.Len(t, bills.Filter(BillSearch("bill-00")), 2)
	require.Len(t, bills.Filter(BillSearch("")), 2)
	require.Empty(t, bills.Filter(BillSearch("nothing")))

	require.Len(t, orders.Filter(OrderSearch("APPROVED")), 1)
	require.Len(t, orders.Filter(OrderSearch("po-2024")), 2)
	// bills match on bill number, not on the shared document number
	require.Empty(t, bills.Filter(BillSearch("PB-2024")))
}
