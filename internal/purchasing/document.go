package purchasing

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Header holds the fields shared by orders and bills.
type Header struct {
	ID                   string          `json:"id"`
	Number               string          `json:"number" validate:"required"`
	SupplierID           string          `json:"supplierId"`
	SupplierReference    string          `json:"supplierReference"`
	Date                 Date            `json:"date" validate:"required"`
	Status               Status          `json:"status" validate:"required,oneof=draft sent approved cancelled completed"`
	ExpectedDeliveryDate Date            `json:"expectedDeliveryDate" validate:"required"`
	Notes                string          `json:"notes,omitempty"`
	LineItems            []LineItem      `json:"lineItems" validate:"dive"`
	TotalAmount          decimal.Decimal `json:"totalAmount" validate:"gte=0"`
	TaxAmount            decimal.Decimal `json:"taxAmount" validate:"gte=0"`
	GrandTotal           decimal.Decimal `json:"grandTotal"`
}

// normalize derives TotalAmount from the lines when there are any and
// GrandTotal from TotalAmount and TaxAmount.
func (h *Header) normalize() {
	if h.LineItems == nil {
		h.LineItems = []LineItem{}
	}
	if len(h.LineItems) > 0 {
		h.TotalAmount = SumLineItems(h.LineItems)
	}
	h.GrandTotal = h.TotalAmount.Add(h.TaxAmount)
}

// syncLineTotal sets TotalAmount to the line sum after the lines changed,
// including when the last line was removed.
func (h *Header) syncLineTotal() {
	h.TotalAmount = SumLineItems(h.LineItems)
	h.GrandTotal = h.TotalAmount.Add(h.TaxAmount)
}

// Document is a purchase order or a purchase bill. The set of
// implementations is closed: *Order and *Bill.
type Document interface {
	Kind() Kind
	Head() *Header
	clone() Document
}

// Match dispatches on the document variant.
func Match[R any](doc Document, onOrder func(*Order) R, onBill func(*Bill) R) R {
	switch d := doc.(type) {
	case *Order:
		return onOrder(d)
	case *Bill:
		return onBill(d)
	}
	panic(fmt.Sprintf("purchasing: unexpected document type %T", doc))
}

func cloneOf[D Document](doc D) D {
	return doc.clone().(D)
}

// Order is a purchase order.
type Order struct {
	Header
	DeliveredItems int `json:"deliveredItems" validate:"gte=0"`
}

func (o *Order) Kind() Kind { return KindOrder }

func (o *Order) Head() *Header { return &o.Header }

func (o *Order) clone() Document {
	c := *o
	c.LineItems = cloneLineItems(o.LineItems)
	return &c
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{Type: KindOrder, alias: alias(o)})
}

// NewOrderDraft returns the blank form used when creating an order.
func NewOrderDraft(today Date) *Order {
	return &Order{Header: draftHeader(today)}
}

// Bill is a purchase bill, optionally created from an order.
type Bill struct {
	Header
	BillNumber      string          `json:"billNumber" validate:"required"`
	PurchaseOrderID string          `json:"purchaseOrderId,omitempty"`
	PaymentTerms    PaymentTerms    `json:"paymentTerms" validate:"required,oneof=immediate net15 net30 net45 net60"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus" validate:"required,oneof=unpaid partial paid"`
	PaidAmount      decimal.Decimal `json:"paidAmount" validate:"gte=0"`
	DueDate         Date            `json:"dueDate" validate:"required"`
	Attachment      *Attachment     `json:"pdfFile,omitempty"`
}

func (b *Bill) Kind() Kind { return KindBill }

func (b *Bill) Head() *Header { return &b.Header }

func (b *Bill) clone() Document {
	c := *b
	c.LineItems = cloneLineItems(b.LineItems)
	if b.Attachment != nil {
		att := *b.Attachment
		c.Attachment = &att
	}
	return &c
}

func (b Bill) MarshalJSON() ([]byte, error) {
	type alias Bill
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{Type: KindBill, alias: alias(b)})
}

// Balance is the amount still owed on the bill.
func (b *Bill) Balance() decimal.Decimal {
	return b.GrandTotal.Sub(b.PaidAmount)
}

// DerivedPaymentStatus computes the payment status implied by PaidAmount.
func (b *Bill) DerivedPaymentStatus() PaymentStatus {
	switch {
	case !b.PaidAmount.IsPositive():
		return PaymentUnpaid
	case b.PaidAmount.GreaterThanOrEqual(b.GrandTotal):
		return PaymentPaid
	default:
		return PaymentPartial
	}
}

// Overdue reports whether an unsettled bill is past its due date on day asOf.
func (b *Bill) Overdue(asOf Date) bool {
	if b.DueDate.IsZero() || b.PaymentStatus == PaymentPaid {
		return false
	}
	return b.DueDate.Before(asOf)
}

// NewBillDraft returns the blank form used when creating a bill.
func NewBillDraft(today Date) *Bill {
	return &Bill{
		Header:        draftHeader(today),
		PaymentTerms:  TermsNet30,
		PaymentStatus: PaymentUnpaid,
		PaidAmount:    decimal.Zero,
	}
}

// NewBillFromOrder prepares a bill draft for an order being converted.
// Supplier data, number, delivery date, notes, tax and lines carry over;
// bill-only fields start from their defaults and the order is left untouched.
func NewBillFromOrder(order *Order, today Date) *Bill {
	bill := NewBillDraft(today)
	bill.Number = order.Number
	bill.SupplierID = order.SupplierID
	bill.SupplierReference = order.SupplierReference
	bill.ExpectedDeliveryDate = order.ExpectedDeliveryDate
	bill.Notes = order.Notes
	bill.TaxAmount = order.TaxAmount
	bill.TotalAmount = order.TotalAmount
	bill.PurchaseOrderID = order.ID
	for _, item := range order.LineItems {
		item.ID = newLineItemID()
		bill.LineItems = append(bill.LineItems, item)
	}
	bill.normalize()
	return bill
}

func draftHeader(today Date) Header {
	return Header{
		Date:        today,
		Status:      StatusDraft,
		LineItems:   []LineItem{},
		TotalAmount: decimal.Zero,
		TaxAmount:   decimal.Zero,
		GrandTotal:  decimal.Zero,
	}
}
