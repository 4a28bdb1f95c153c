package purchasing

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

var (
	//go:embed seed/orders.json
	seedOrders []byte
	//go:embed seed/bills.json
	seedBills []byte
)

// Fixtures are the sample documents a session starts with.
type Fixtures struct {
	Orders []*Order
	Bills  []*Bill
}

// LoadSeed decodes the embedded sample documents.
func LoadSeed() (Fixtures, error) {
	var f Fixtures
	if err := json.Unmarshal(seedOrders, &f.Orders); err != nil {
		return Fixtures{}, fmt.Errorf("decode seed orders: %w", err)
	}
	if err := json.Unmarshal(seedBills, &f.Bills); err != nil {
		return Fixtures{}, fmt.Errorf("decode seed bills: %w", err)
	}
	return f, nil
}

// SeedStores loads the sample documents into both stores.
func SeedStores(orders *Store[*Order], bills *Store[*Bill]) error {
	f, err := LoadSeed()
	if err != nil {
		return err
	}
	if err := orders.Seed(f.Orders...); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := bills.Seed(f.Bills...); err != nil {
		return fmt.Errorf("seed bills: %w", err)
	}
	return nil
}
