package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/odyssey-erp/console/internal/catalog"
	"github.com/odyssey-erp/console/internal/purchasing"
)

// OrderScreen lists purchase orders.
type OrderScreen struct {
	orders   *purchasing.Store[*purchasing.Order]
	format   *Formatter
	pageSize int
}

// NewOrderScreen builds the purchase order list.
func NewOrderScreen(orders *purchasing.Store[*purchasing.Order], format *Formatter, pageSize int) *OrderScreen {
	return &OrderScreen{orders: orders, format: format, pageSize: pageSize}
}

// Page returns the orders matching filters on the requested page.
func (s *OrderScreen) Page(filters ListFilters) ([]*purchasing.Order, Pagination) {
	if filters.Limit <= 0 {
		filters.Limit = s.pageSize
	}
	return Paginate(s.orders.Filter(purchasing.OrderSearch(filters.Search)), filters)
}

// Render writes the order table and its footer.
func (s *OrderScreen) Render(w io.Writer, filters ListFilters) error {
	rows, page := s.Page(filters)
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPO Number\tSupplier Ref\tDate\tExpected Delivery\tTotal\tStatus")
	for _, o := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.Number, o.SupplierReference, o.Date, o.ExpectedDeliveryDate,
			s.format.Money(o.GrandTotal), o.Status.Label())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, page.Summary("purchase orders"))
	return err
}

// BillScreen lists purchase bills. Bills converted from an order can be
// expanded to show the order they came from.
type BillScreen struct {
	bills    *purchasing.Store[*purchasing.Bill]
	orders   *purchasing.Store[*purchasing.Order]
	format   *Formatter
	pageSize int
}

// NewBillScreen builds the purchase bill list.
func NewBillScreen(bills *purchasing.Store[*purchasing.Bill], orders *purchasing.Store[*purchasing.Order], format *Formatter, pageSize int) *BillScreen {
	return &BillScreen{bills: bills, orders: orders, format: format, pageSize: pageSize}
}

// Page returns the bills matching filters on the requested page.
func (s *BillScreen) Page(filters ListFilters) ([]*purchasing.Bill, Pagination) {
	if filters.Limit <= 0 {
		filters.Limit = s.pageSize
	}
	return Paginate(s.bills.Filter(purchasing.BillSearch(filters.Search)), filters)
}

// Render writes the bill table. With expand, linked bills are followed by
// their order details.
func (s *BillScreen) Render(w io.Writer, filters ListFilters, expand bool) error {
	rows, page := s.Page(filters)
	tw := newTable(w)
	fmt.Fprintln(tw, "\tID\tBill Number\tSupplier Ref\tDate\tDue Date\tTotal\tPayment Status")
	for _, b := range rows {
		marker := ""
		if b.PurchaseOrderID != "" {
			marker = ">"
			if expand {
				marker = "v"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			marker, b.ID, b.BillNumber, b.SupplierReference, b.Date, b.DueDate,
			s.format.Money(b.GrandTotal), b.PaymentStatus.Label())
		if expand && b.PurchaseOrderID != "" {
			number, delivery := s.linkedOrder(b)
			fmt.Fprintf(tw, "\t\tPO Number: %s\tExpected Delivery: %s\t\t\t\t\t\n", number, delivery)
		}
		if expand {
			for _, item := range b.LineItems {
				fmt.Fprintf(tw, "\t\t- %s\t%d x %s\t\t\t%s\t\n",
					productLabel(item), item.Quantity, s.format.Money(item.UnitPrice), s.format.Money(item.Total()))
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, page.Summary("purchase bills"))
	return err
}

// linkedOrder resolves the order a bill was converted from. The reference is
// weak: a missing order falls back to the stored id and the bill's own date.
func (s *BillScreen) linkedOrder(b *purchasing.Bill) (number string, delivery purchasing.Date) {
	if s.orders != nil {
		if o, err := s.orders.Get(b.PurchaseOrderID); err == nil {
			return fmt.Sprintf("%s (%s)", o.Number, o.ID), o.ExpectedDeliveryDate
		}
	}
	return b.PurchaseOrderID, b.ExpectedDeliveryDate
}

// DocumentView renders a single document with its lines and totals.
type DocumentView struct {
	format  *Formatter
	catalog *catalog.Directory
}

// NewDocumentView builds the detail renderer.
func NewDocumentView(format *Formatter, dir *catalog.Directory) *DocumentView {
	return &DocumentView{format: format, catalog: dir}
}

// Render writes doc as a field list followed by the line item table.
func (v *DocumentView) Render(w io.Writer, doc purchasing.Document) error {
	h := doc.Head()
	tw := newTable(w)
	title := purchasing.Match(doc,
		func(*purchasing.Order) string { return "Purchase Order" },
		func(*purchasing.Bill) string { return "Purchase Bill" },
	)
	id := h.ID
	if id == "" {
		id = "(new)"
	}
	fmt.Fprintf(tw, "%s\t%s\n", title, id)
	fmt.Fprintf(tw, "number\t%s\n", h.Number)
	fmt.Fprintf(tw, "supplierId\t%s\n", v.supplier(h.SupplierID))
	fmt.Fprintf(tw, "supplierReference\t%s\n", h.SupplierReference)
	fmt.Fprintf(tw, "date\t%s\n", h.Date)
	fmt.Fprintf(tw, "status\t%s\n", h.Status.Label())
	fmt.Fprintf(tw, "expectedDeliveryDate\t%s\n", h.ExpectedDeliveryDate)
	if h.Notes != "" {
		fmt.Fprintf(tw, "notes\t%s\n", h.Notes)
	}
	switch d := doc.(type) {
	case *purchasing.Order:
		fmt.Fprintf(tw, "deliveredItems\t%s\n", v.format.Count(d.DeliveredItems))
	case *purchasing.Bill:
		fmt.Fprintf(tw, "billNumber\t%s\n", d.BillNumber)
		if d.PurchaseOrderID != "" {
			fmt.Fprintf(tw, "purchaseOrderId\t%s\n", d.PurchaseOrderID)
		}
		fmt.Fprintf(tw, "paymentTerms\t%s\n", d.PaymentTerms.Label())
		fmt.Fprintf(tw, "paymentStatus\t%s\n", d.PaymentStatus.Label())
		fmt.Fprintf(tw, "paidAmount\t%s\n", v.format.Money(d.PaidAmount))
		fmt.Fprintf(tw, "balance\t%s\n", v.format.Money(d.Balance()))
		fmt.Fprintf(tw, "dueDate\t%s\n", d.DueDate)
		if d.Attachment != nil {
			fmt.Fprintf(tw, "pdfFile\t%s (%s bytes)\n", d.Attachment.FileName, v.format.Count(int(d.Attachment.Size)))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "#\tProduct\tQty\tUnit Price\tTotal")
	for i, item := range h.LineItems {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i, productLabel(item), item.Quantity,
			v.format.Money(item.UnitPrice), v.format.Money(item.Total()))
	}
	fmt.Fprintf(tw, "\t\t\tSubtotal\t%s\n", v.format.Money(h.TotalAmount))
	fmt.Fprintf(tw, "\t\t\tTax\t%s\n", v.format.Money(h.TaxAmount))
	fmt.Fprintf(tw, "\t\t\tGrand Total\t%s\n", v.format.Money(h.GrandTotal))
	return tw.Flush()
}

func (v *DocumentView) supplier(id string) string {
	if id == "" || v.catalog == nil {
		return id
	}
	if name := v.catalog.SupplierName(id); name != id {
		return fmt.Sprintf("%s (%s)", id, name)
	}
	return id
}

func productLabel(item purchasing.LineItem) string {
	parts := make([]string, 0, 2)
	if item.ProductName != "" {
		parts = append(parts, item.ProductName)
	}
	if item.ProductID != "" {
		parts = append(parts, "["+item.ProductID+"]")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
