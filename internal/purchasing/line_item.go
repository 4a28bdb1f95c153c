package purchasing

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line item field names accepted by LineItem.WithField.
const (
	LineFieldProductID   = "productId"
	LineFieldProductName = "productName"
	LineFieldQuantity    = "quantity"
	LineFieldUnitPrice   = "unitPrice"
)

// LineItem is one product row of a purchase document.
type LineItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
}

// NewLineItem returns an empty line with quantity 1 and a fresh id.
func NewLineItem() LineItem {
	return LineItem{
		ID:        newLineItemID(),
		Quantity:  1,
		UnitPrice: decimal.Zero,
	}
}

// Total is Quantity × UnitPrice. It is never stored, so it cannot drift.
func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// WithField returns a copy of l with field set from raw form input.
// Quantity and unit price that fail to parse or are negative become 0.
func (l LineItem) WithField(field, value string) (LineItem, error) {
	switch field {
	case LineFieldProductID:
		l.ProductID = value
	case LineFieldProductName:
		l.ProductName = value
	case LineFieldQuantity:
		l.Quantity = parseCount(value)
	case LineFieldUnitPrice:
		l.UnitPrice = parseAmount(value)
	default:
		return l, fmt.Errorf("%w: line item %q", ErrUnknownField, field)
	}
	return l, nil
}

func (l LineItem) MarshalJSON() ([]byte, error) {
	type alias LineItem
	return json.Marshal(struct {
		alias
		Total decimal.Decimal `json:"total"`
	}{alias: alias(l), Total: l.Total()})
}

// SumLineItems adds up the line totals.
func SumLineItems(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total())
	}
	return sum
}

func cloneLineItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	return append([]LineItem(nil), items...)
}

func newLineItemID() string {
	return "LI-" + uuid.NewString()
}

var (
	countPrefix  = regexp.MustCompile(`^[+-]?\d+`)
	amountPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)
)

// parseCount reads the leading integer of raw, so "5 pcs" is 5 and "2.5" is
// 2. Input without a leading integer or below zero becomes 0.
func parseCount(raw string) int {
	n, err := strconv.Atoi(countPrefix.FindString(strings.TrimSpace(raw)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseAmount reads the leading decimal number of raw, so "12.5kg" is 12.5.
// Input without a leading number or below zero becomes 0.
func parseAmount(raw string) decimal.Decimal {
	lead := strings.TrimPrefix(amountPrefix.FindString(strings.TrimSpace(raw)), "+")
	d, err := decimal.NewFromString(lead)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
