package purchasing

import (
	"fmt"
	"log/slog"
	"time"
)

// EditorState is the state of an editor session.
type EditorState int

const (
	EditorClosed EditorState = iota
	EditorCreatingNew
	EditorEditing
)

func (s EditorState) String() string {
	switch s {
	case EditorCreatingNew:
		return "creating"
	case EditorEditing:
		return "editing"
	default:
		return "closed"
	}
}

// Saver persists editor results. *Store satisfies it.
type Saver[D Document] interface {
	Create(draft D) (D, error)
	Update(id string, patch Patch[D]) (D, error)
}

// Editor is the transient form state for one document. At most one document
// is bound at a time; opening again replaces it without warning.
type Editor[D Document] struct {
	saver  Saver[D]
	blank  func(today Date) D
	patch  func(form D) Patch[D]
	logger *slog.Logger

	// Now supplies the date used for new drafts.
	Now func() time.Time
	// OnSave runs after a successful submit with the stored document.
	OnSave func(saved D)
	// OnClose runs whenever an open session closes, by cancel or by submit.
	OnClose func()

	state    EditorState
	targetID string
	form     D
}

// NewEditor builds an editor. blank produces create-mode defaults and patch
// turns an edited form into the update sent to the saver.
func NewEditor[D Document](saver Saver[D], blank func(today Date) D, patch func(form D) Patch[D], logger *slog.Logger) *Editor[D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor[D]{
		saver:  saver,
		blank:  blank,
		patch:  patch,
		logger: logger,
		Now:    time.Now,
	}
}

// NewOrderEditor builds the purchase order editor.
func NewOrderEditor(saver Saver[*Order], logger *slog.Logger) *Editor[*Order] {
	return NewEditor(saver, NewOrderDraft, func(o *Order) Patch[*Order] { return PatchFromOrder(o) }, logger)
}

// State returns the current session state.
func (e *Editor[D]) State() EditorState { return e.state }

// TargetID returns the id of the document being edited, or "" otherwise.
func (e *Editor[D]) TargetID() string { return e.targetID }

// Form returns a copy of the bound form. ok is false when closed.
func (e *Editor[D]) Form() (form D, ok bool) {
	if e.state == EditorClosed {
		return form, false
	}
	return cloneOf(e.form), true
}

// OpenForCreate binds a blank draft.
func (e *Editor[D]) OpenForCreate() {
	e.open(EditorCreatingNew, "", e.blank(e.today()))
}

// OpenForEdit binds a full copy of doc.
func (e *Editor[D]) OpenForEdit(doc D) {
	e.open(EditorEditing, doc.Head().ID, cloneOf(doc))
}

func (e *Editor[D]) open(state EditorState, id string, form D) {
	e.state = state
	e.targetID = id
	e.form = form
	e.logger.Debug("editor opened",
		slog.String("kind", string(form.Kind())),
		slog.String("state", state.String()),
		slog.String("id", id),
	)
}

// Close discards the form and closes the session.
func (e *Editor[D]) Close() {
	if e.state == EditorClosed {
		return
	}
	var zero D
	e.state = EditorClosed
	e.targetID = ""
	e.form = zero
	if e.OnClose != nil {
		e.OnClose()
	}
}

// Cancel is Close.
func (e *Editor[D]) Cancel() { e.Close() }

// Submit validates the form and creates or updates the document. On failure
// the session stays open with the form intact.
func (e *Editor[D]) Submit() (D, error) {
	var zero D
	if e.state == EditorClosed {
		return zero, ErrEditorClosed
	}
	form := cloneOf(e.form)
	form.Head().normalize()
	if err := Validate(form); err != nil {
		return zero, err
	}

	var (
		saved D
		err   error
	)
	if e.state == EditorCreatingNew {
		saved, err = e.saver.Create(form)
	} else {
		saved, err = e.saver.Update(e.targetID, e.patch(form))
	}
	if err != nil {
		e.logger.Warn("editor submit failed", slog.String("id", e.targetID), slog.Any("error", err))
		return zero, fmt.Errorf("submit %s: %w", form.Kind(), err)
	}
	if e.OnSave != nil {
		e.OnSave(saved)
	}
	e.Close()
	return saved, nil
}

// AddLineItem appends a blank line and returns its index.
func (e *Editor[D]) AddLineItem() (int, error) {
	var idx int
	err := e.edit(func(h *Header) error {
		h.LineItems = append(h.LineItems, NewLineItem())
		idx = len(h.LineItems) - 1
		h.syncLineTotal()
		return nil
	})
	return idx, err
}

// UpdateLineItem sets one field of the line at index from raw input.
func (e *Editor[D]) UpdateLineItem(index int, field, value string) error {
	return e.edit(func(h *Header) error {
		if index < 0 || index >= len(h.LineItems) {
			return fmt.Errorf("%w: %d", ErrLineItemIndex, index)
		}
		item, err := h.LineItems[index].WithField(field, value)
		if err != nil {
			return err
		}
		items := cloneLineItems(h.LineItems)
		items[index] = item
		h.LineItems = items
		h.syncLineTotal()
		return nil
	})
}

// RemoveLineItem drops the line at index; later lines shift down.
func (e *Editor[D]) RemoveLineItem(index int) error {
	return e.edit(func(h *Header) error {
		if index < 0 || index >= len(h.LineItems) {
			return fmt.Errorf("%w: %d", ErrLineItemIndex, index)
		}
		items := make([]LineItem, 0, len(h.LineItems)-1)
		items = append(items, h.LineItems[:index]...)
		h.LineItems = append(items, h.LineItems[index+1:]...)
		h.syncLineTotal()
		return nil
	})
}

// SetField sets a header or variant field from raw form input.
func (e *Editor[D]) SetField(name, value string) error {
	if e.state == EditorClosed {
		return ErrEditorClosed
	}
	ok, err := setHeaderField(e.form.Head(), name, value)
	if err != nil || ok {
		return err
	}
	return Match(Document(e.form),
		func(o *Order) error { return setOrderField(o, name, value) },
		func(b *Bill) error { return setBillField(b, name, value) },
	)
}

func (e *Editor[D]) edit(fn func(h *Header) error) error {
	if e.state == EditorClosed {
		return ErrEditorClosed
	}
	return fn(e.form.Head())
}

func (e *Editor[D]) today() Date {
	return DateOf(e.Now())
}

func setHeaderField(h *Header, name, value string) (bool, error) {
	switch name {
	case "number":
		h.Number = value
	case "supplierId":
		h.SupplierID = value
	case "supplierReference":
		h.SupplierReference = value
	case "notes":
		h.Notes = value
	case "status":
		s := Status(value)
		if !s.Valid() {
			return true, fieldError(name, "oneof")
		}
		h.Status = s
	case "date", "expectedDeliveryDate":
		d, err := ParseDate(value)
		if err != nil {
			return true, fieldError(name, "date")
		}
		if name == "date" {
			h.Date = d
		} else {
			h.ExpectedDeliveryDate = d
		}
	case "totalAmount":
		h.TotalAmount = parseAmount(value)
	case "taxAmount":
		h.TaxAmount = parseAmount(value)
	default:
		return false, nil
	}
	return true, nil
}

func setOrderField(o *Order, name, value string) error {
	switch name {
	case "deliveredItems":
		o.DeliveredItems = parseCount(value)
	default:
		return fmt.Errorf("%w: order %q", ErrUnknownField, name)
	}
	return nil
}

func setBillField(b *Bill, name, value string) error {
	switch name {
	case "billNumber":
		b.BillNumber = value
	case "purchaseOrderId":
		b.PurchaseOrderID = value
	case "paymentTerms":
		t := PaymentTerms(value)
		if !t.Valid() {
			return fieldError(name, "oneof")
		}
		b.PaymentTerms = t
	case "paymentStatus":
		s := PaymentStatus(value)
		if !s.Valid() {
			return fieldError(name, "oneof")
		}
		b.PaymentStatus = s
	case "paidAmount":
		b.PaidAmount = parseAmount(value)
	case "dueDate":
		d, err := ParseDate(value)
		if err != nil {
			return fieldError(name, "date")
		}
		b.DueDate = d
	default:
		return fmt.Errorf("%w: bill %q", ErrUnknownField, name)
	}
	return nil
}

func fieldError(field, rule string) error {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// BillEditor adds conversion and PDF attachment to the bill form.
type BillEditor struct {
	*Editor[*Bill]
	attachmentLimit int64
}

// NewBillEditor builds the purchase bill editor. A limit <= 0 means
// DefaultAttachmentLimit.
func NewBillEditor(saver Saver[*Bill], attachmentLimit int64, logger *slog.Logger) *BillEditor {
	return &BillEditor{
		Editor:          NewEditor(saver, NewBillDraft, func(b *Bill) Patch[*Bill] { return PatchFromBill(b) }, logger),
		attachmentLimit: attachmentLimit,
	}
}

// OpenForConversion opens a create session on a bill drafted from order.
func (e *BillEditor) OpenForConversion(order *Order) {
	e.open(EditorCreatingNew, "", NewBillFromOrder(order, e.today()))
}

// AttachPDF stores the file on the form. A rejected file leaves the form as
// it was.
func (e *BillEditor) AttachPDF(name string, data []byte) (Attachment, error) {
	if e.state == EditorClosed {
		return Attachment{}, ErrEditorClosed
	}
	att, err := ReadAttachment(name, data, e.attachmentLimit)
	if err != nil {
		e.logger.Info("attachment rejected", slog.String("file", name), slog.Any("error", err))
		return Attachment{}, err
	}
	e.form.Attachment = &att
	return att, nil
}

// RemoveAttachment clears the form's PDF.
func (e *BillEditor) RemoveAttachment() error {
	if e.state == EditorClosed {
		return ErrEditorClosed
	}
	e.form.Attachment = nil
	return nil
}

// SyncPaymentStatus sets the payment status implied by the paid amount.
func (e *BillEditor) SyncPaymentStatus() (PaymentStatus, error) {
	if e.state == EditorClosed {
		return "", ErrEditorClosed
	}
	b := e.form
	b.normalize()
	b.PaymentStatus = b.DerivedPaymentStatus()
	return b.PaymentStatus, nil
}

var _ Saver[*Order] = (*Store[*Order])(nil)
var _ Saver[*Bill] = (*Store[*Bill])(nil)
