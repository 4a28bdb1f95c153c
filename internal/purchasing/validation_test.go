package purchasing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidateBillRequiredFields(t *testing.T) {
	b := NewBillDraft(NewDate(2024, time.March, 1))
	b.normalize()

	err := Validate(b)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"number", "expectedDeliveryDate", "billNumber", "dueDate"} {
		require.Equal(t, "required", verr.Fields[field], field)
	}
	require.NotContains(t, verr.Fields, "date")
	require.Contains(t, err.Error(), "billNumber (required)")
}

func TestValidateAmounts(t *testing.T) {
	b := validBill()
	b.TaxAmount = decimal.NewFromInt(-1)
	b.LineItems = []LineItem{{ID: "LI1", Quantity: 1, UnitPrice: decimal.NewFromInt(-2)}}
	b.normalize()

	var verr *ValidationError
	require.ErrorAs(t, Validate(b), &verr)
	require.Equal(t, "gte", verr.Fields["taxAmount"])
	require.Equal(t, "gte", verr.Fields["lineItems[0].unitPrice"])
}

func TestValidateAcceptsCompleteDocuments(t *testing.T) {
	o := validOrder()
	o.normalize()
	require.NoError(t, Validate(o))

	b := validBill()
	b.PaidAmount = decimal.NewFromInt(0)
	b.normalize()
	require.NoError(t, Validate(b))
}

func TestFieldPath(t *testing.T) {
	require.Equal(t, "lineItems[2].quantity", fieldPath("Order.Header.lineItems[2].quantity"))
	require.Equal(t, "billNumber", fieldPath("Bill.billNumber"))
	require.Equal(t, "number", fieldPath("number"))
}

func TestEnumLabels(t *testing.T) {
	require.Equal(t, "Approved", StatusApproved.Label())
	require.Equal(t, "Net 45", TermsNet45.Label())
	require.Equal(t, "Immediate", TermsImmediate.Label())
	require.Equal(t, "Partial", PaymentPartial.Label())
	require.Equal(t, 45, TermsNet45.Days())
	require.False(t, Status("shipped").Valid())
}

func TestBillOverdue(t *testing.T) {
	b := validBill()
	b.DueDate = NewDate(2024, time.March, 31)
	require.True(t, b.Overdue(NewDate(2024, time.April, 1)))
	require.False(t, b.Overdue(NewDate(2024, time.March, 31)))

	b.PaymentStatus = PaymentPaid
	require.False(t, b.Overdue(NewDate(2024, time.April, 1)))
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.Equal(t, "2024-03-16", d.AddDays(1).String())

	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"2024-03-15"`, string(raw))

	var back Date
	require.NoError(t, back.UnmarshalJSON([]byte(`""`)))
	require.True(t, back.IsZero())
	require.Error(t, back.UnmarshalJSON([]byte(`"15/03/2024"`)))
}
