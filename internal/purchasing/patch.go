package purchasing

import "github.com/shopspring/decimal"

// Patch is a partial update applied over a stored document.
type Patch[D Document] interface {
	apply(doc D)
}

// HeaderPatch carries optional base fields. Nil fields keep their prior value.
type HeaderPatch struct {
	Number               *string
	SupplierID           *string
	SupplierReference    *string
	Date                 *Date
	Status               *Status
	ExpectedDeliveryDate *Date
	Notes                *string
	LineItems            []LineItem
	TotalAmount          *decimal.Decimal
	TaxAmount            *decimal.Decimal
	GrandTotal           *decimal.Decimal
}

func (p HeaderPatch) apply(h *Header) {
	if p.Number != nil {
		h.Number = *p.Number
	}
	if p.SupplierID != nil {
		h.SupplierID = *p.SupplierID
	}
	if p.SupplierReference != nil {
		h.SupplierReference = *p.SupplierReference
	}
	if p.Date != nil {
		h.Date = *p.Date
	}
	if p.Status != nil {
		h.Status = *p.Status
	}
	if p.ExpectedDeliveryDate != nil {
		h.ExpectedDeliveryDate = *p.ExpectedDeliveryDate
	}
	if p.Notes != nil {
		h.Notes = *p.Notes
	}
	if p.LineItems != nil {
		h.LineItems = cloneLineItems(p.LineItems)
	}
	switch {
	case p.TotalAmount != nil:
		h.TotalAmount = *p.TotalAmount
	case p.LineItems != nil:
		h.TotalAmount = SumLineItems(h.LineItems)
	}
	if p.TaxAmount != nil {
		h.TaxAmount = *p.TaxAmount
	}
	if p.GrandTotal != nil {
		h.GrandTotal = *p.GrandTotal
	}
}

// OrderPatch updates a purchase order.
type OrderPatch struct {
	HeaderPatch
	DeliveredItems *int
}

func (p OrderPatch) apply(o *Order) {
	p.HeaderPatch.apply(&o.Header)
	if p.DeliveredItems != nil {
		o.DeliveredItems = *p.DeliveredItems
	}
}

// BillPatch updates a purchase bill. ClearAttachment removes the stored PDF.
type BillPatch struct {
	HeaderPatch
	BillNumber      *string
	PurchaseOrderID *string
	PaymentTerms    *PaymentTerms
	PaymentStatus   *PaymentStatus
	PaidAmount      *decimal.Decimal
	DueDate         *Date
	Attachment      *Attachment
	ClearAttachment bool
}

func (p BillPatch) apply(b *Bill) {
	p.HeaderPatch.apply(&b.Header)
	if p.BillNumber != nil {
		b.BillNumber = *p.BillNumber
	}
	if p.PurchaseOrderID != nil {
		b.PurchaseOrderID = *p.PurchaseOrderID
	}
	if p.PaymentTerms != nil {
		b.PaymentTerms = *p.PaymentTerms
	}
	if p.PaymentStatus != nil {
		b.PaymentStatus = *p.PaymentStatus
	}
	if p.PaidAmount != nil {
		b.PaidAmount = *p.PaidAmount
	}
	if p.DueDate != nil {
		b.DueDate = *p.DueDate
	}
	switch {
	case p.ClearAttachment:
		b.Attachment = nil
	case p.Attachment != nil:
		att := *p.Attachment
		b.Attachment = &att
	}
}

// PatchFromOrder builds a patch carrying every editable field of o.
func PatchFromOrder(o *Order) OrderPatch {
	return OrderPatch{
		HeaderPatch:    patchFromHeader(o.Header),
		DeliveredItems: ptr(o.DeliveredItems),
	}
}

// PatchFromBill builds a patch carrying every editable field of b.
func PatchFromBill(b *Bill) BillPatch {
	p := BillPatch{
		HeaderPatch:     patchFromHeader(b.Header),
		BillNumber:      ptr(b.BillNumber),
		PurchaseOrderID: ptr(b.PurchaseOrderID),
		PaymentTerms:    ptr(b.PaymentTerms),
		PaymentStatus:   ptr(b.PaymentStatus),
		PaidAmount:      ptr(b.PaidAmount),
		DueDate:         ptr(b.DueDate),
	}
	if b.Attachment != nil {
		att := *b.Attachment
		p.Attachment = &att
	} else {
		p.ClearAttachment = true
	}
	return p
}

func patchFromHeader(h Header) HeaderPatch {
	lines := cloneLineItems(h.LineItems)
	if lines == nil {
		lines = []LineItem{}
	}
	return HeaderPatch{
		Number:               ptr(h.Number),
		SupplierID:           ptr(h.SupplierID),
		SupplierReference:    ptr(h.SupplierReference),
		Date:                 ptr(h.Date),
		Status:               ptr(h.Status),
		ExpectedDeliveryDate: ptr(h.ExpectedDeliveryDate),
		Notes:                ptr(h.Notes),
		LineItems:            lines,
		TotalAmount:          ptr(h.TotalAmount),
		TaxAmount:            ptr(h.TaxAmount),
		GrandTotal:           ptr(h.GrandTotal),
	}
}

func ptr[T any](v T) *T {
	return &v
}
