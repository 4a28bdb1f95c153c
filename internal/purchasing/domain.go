package purchasing

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind discriminates purchase documents.
type Kind string

const (
	KindOrder Kind = "order"
	KindBill  Kind = "bill"
)

// Identifier prefixes used by the stores.
const (
	OrderIDPrefix = "PO"
	BillIDPrefix  = "PB"
)

// Status is a document label. Any value may follow any other.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Statuses lists document statuses in display order.
var Statuses = []Status{StatusDraft, StatusSent, StatusApproved, StatusCancelled, StatusCompleted}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Label returns the display form, e.g. "Approved".
func (s Status) Label() string { return label(string(s)) }

// PaymentTerms of a purchase bill.
type PaymentTerms string

const (
	TermsImmediate PaymentTerms = "immediate"
	TermsNet15     PaymentTerms = "net15"
	TermsNet30     PaymentTerms = "net30"
	TermsNet45     PaymentTerms = "net45"
	TermsNet60     PaymentTerms = "net60"
)

// Valid reports whether t is a known payment term.
func (t PaymentTerms) Valid() bool {
	switch t {
	case TermsImmediate, TermsNet15, TermsNet30, TermsNet45, TermsNet60:
		return true
	}
	return false
}

// Days returns the credit period in days.
func (t PaymentTerms) Days() int {
	switch t {
	case TermsNet15:
		return 15
	case TermsNet30:
		return 30
	case TermsNet45:
		return 45
	case TermsNet60:
		return 60
	}
	return 0
}

// Label returns the display form, e.g. "Net 30".
func (t PaymentTerms) Label() string {
	if rest, ok := strings.CutPrefix(string(t), "net"); ok {
		return "Net " + rest
	}
	return label(string(t))
}

// PaymentStatus tracks settlement of a purchase bill.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

// Label returns the display form, e.g. "Partial".
func (s PaymentStatus) Label() string { return label(string(s)) }

func label(v string) string {
	return cases.Title(language.English).String(v)
}

var (
	// ErrNotFound indicates the document id is not in the store.
	ErrNotFound = errors.New("purchasing: not found")
	// ErrValidation indicates invalid document content.
	ErrValidation = errors.New("purchasing: invalid input")
	// ErrEditorClosed occurs when a form operation runs without an open session.
	ErrEditorClosed = errors.New("purchasing: editor is closed")
	// ErrLineItemIndex indicates a line item position outside the sequence.
	ErrLineItemIndex = errors.New("purchasing: line item index out of range")
	// ErrUnknownField indicates a field name the form does not have.
	ErrUnknownField = errors.New("purchasing: unknown field")
	// ErrAttachment indicates a rejected bill attachment.
	ErrAttachment = errors.New("purchasing: attachment rejected")
	// ErrDuplicateID occurs when seeding a document whose id is taken.
	ErrDuplicateID = errors.New("purchasing: duplicate id")
)
