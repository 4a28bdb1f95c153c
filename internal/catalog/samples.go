package catalog

import "github.com/shopspring/decimal"

func sampleSuppliers() []Supplier {
	return []Supplier{
		{
			ID:            "#SUP001",
			Name:          "ABC Manufacturing",
			ContactPerson: "John Smith",
			Email:         "john@abcmfg.com",
			Phone:         "+1 (555) 123-4567",
			BusinessType:  "Manufacturer",
			Status:        "Active",
			LeadTimeDays:  14,
			PaymentTerms:  "Net 30",
			City:          "Detroit",
			Country:       "USA",
		},
		{
			ID:            "#SUP002",
			Name:          "Global Distributors Inc",
			ContactPerson: "Sarah Johnson",
			Email:         "sarah@globaldist.com",
			Phone:         "+1 (555) 987-6543",
			BusinessType:  "Distributor",
			Status:        "Active",
			LeadTimeDays:  7,
			PaymentTerms:  "Net 15",
			City:          "Chicago",
			Country:       "USA",
		},
		{
			ID:            "#SUP003",
			Name:          "Metro Wholesale",
			ContactPerson: "Mike Brown",
			Email:         "mike@metrowholesale.com",
			Phone:         "+1 (555) 456-7890",
			BusinessType:  "Wholesaler",
			Status:        "On Hold",
			LeadTimeDays:  21,
			PaymentTerms:  "Net 45",
			City:          "New York",
			Country:       "USA",
		},
	}
}

func sampleProducts() []Product {
	return []Product{
		{ID: "#PRD001", Name: "Modern Desk Lamp", Category: "Home Decor", SKU: "LAMP-001", Stock: 124, Price: decimal.RequireFromString("59.99"), Cost: decimal.RequireFromString("35.50"), Vendor: "Home Goods Inc."},
		{ID: "#PRD002", Name: "Wireless Earbuds", Category: "Electronics", SKU: "EARBUD-002", Stock: 57, Price: decimal.RequireFromString("129.99"), Cost: decimal.RequireFromString("75.25"), Vendor: "Tech Distributors"},
		{ID: "#PRD003", Name: "Coffee Maker", Category: "Kitchen", SKU: "COFFEE-003", Stock: 0, Price: decimal.RequireFromString("89.99"), Cost: decimal.RequireFromString("45.00"), Vendor: "Kitchen Essentials"},
		{ID: "#PRD004", Name: "Office Chair", Category: "Furniture", SKU: "CHAIR-004", Stock: 18, Price: decimal.RequireFromString("249.99"), Cost: decimal.RequireFromString("150.00"), Vendor: "Acme Supplies"},
		{ID: "#PRD005", Name: "Smart Watch", Category: "Electronics", SKU: "WATCH-005", Stock: 42, Price: decimal.RequireFromString("199.99"), Cost: decimal.RequireFromString("120.50"), Vendor: "Tech Distributors"},
	}
}
