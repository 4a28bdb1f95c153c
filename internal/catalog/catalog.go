// Package catalog is the read-only supplier and product directory that
// purchase documents reference by id.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates an unknown supplier or product id.
var ErrNotFound = errors.New("catalog: not found")

// Supplier represents a supplier entity.
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BusinessType  string `json:"businessType"`
	Status        string `json:"status"`
	LeadTimeDays  int    `json:"leadTime"`
	PaymentTerms  string `json:"paymentTerms"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// Product represents a sellable item.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	SKU      string          `json:"sku"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Vendor   string          `json:"vendor"`
}

// Directory indexes suppliers and products by id.
type Directory struct {
	suppliers []Supplier
	products  []Product
}

// New builds a directory over the given records.
func New(suppliers []Supplier, products []Product) *Directory {
	return &Directory{
		suppliers: append([]Supplier(nil), suppliers...),
		products:  append([]Product(nil), products...),
	}
}

// Default returns the sample directory.
func Default() *Directory {
	return New(sampleSuppliers(), sampleProducts())
}

// Suppliers lists suppliers in directory order.
func (d *Directory) Suppliers() []Supplier {
	return append([]Supplier(nil), d.suppliers...)
}

// Products lists products in directory order.
func (d *Directory) Products() []Product {
	return append([]Product(nil), d.products...)
}

// Supplier looks up a supplier. "SUP001" and "#SUP001" name the same record.
func (d *Directory) Supplier(id string) (Supplier, error) {
	key := normalizeID(id)
	for _, s := range d.suppliers {
		if normalizeID(s.ID) == key {
			return s, nil
		}
	}
	return Supplier{}, fmt.Errorf("%w: supplier %s", ErrNotFound, id)
}

// Product looks up a product. "PRD001" and "#PRD001" name the same record.
func (d *Directory) Product(id string) (Product, error) {
	key := normalizeID(id)
	for _, p := range d.products {
		if normalizeID(p.ID) == key {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: product %s", ErrNotFound, id)
}

// SupplierName resolves id to a display name, falling back to the id itself.
func (d *Directory) SupplierName(id string) string {
	if s, err := d.Supplier(id); err == nil {
		return s.Name
	}
	return id
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(id), "#"))
}
