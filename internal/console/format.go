package console

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders money and counts for one locale and currency.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter builds a formatter for tag and unit.
func NewFormatter(tag language.Tag, unit currency.Unit) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// Money formats an amount with the currency symbol, e.g. "$ 599.90".
func (f *Formatter) Money(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}

// Count formats an integer with locale grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}
