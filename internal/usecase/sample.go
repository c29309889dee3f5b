package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/inventory-pro/backend/internal/domain"
)

var sampleCategories = []string{"Electronics", "Office Supplies", "Accessories", "Home & Living"}

var sampleProducts = []domain.Product{
	{Name: "Wireless Mouse", Category: "Electronics", Stock: 5, Threshold: 10, CostPrice: decimal.NewFromInt(250), SellingPrice: decimal.NewFromInt(450), Supplier: "Tech Supplies"},
	{Name: "USB-C Cable", Category: "Electronics", Stock: 0, Threshold: 20, CostPrice: decimal.NewFromInt(80), SellingPrice: decimal.NewFromInt(150), Supplier: "Cable World"},
	{Name: "Laptop Stand", Category: "Office Supplies", Stock: 3, Threshold: 5, CostPrice: decimal.NewFromInt(500), SellingPrice: decimal.NewFromInt(899), Supplier: "Office Pro"},
	{Name: "Bluetooth Speaker", Category: "Electronics", Stock: 22, Threshold: 8, CostPrice: decimal.NewFromInt(800), SellingPrice: decimal.NewFromInt(1499), Supplier: "Audio Co"},
	{Name: "Phone Case", Category: "Accessories", Stock: 8, Threshold: 15, CostPrice: decimal.NewFromInt(120), SellingPrice: decimal.NewFromInt(299), Supplier: "Mobile Hub"},
	{Name: "Desk Lamp", Category: "Home & Living", Stock: 12, Threshold: 6, CostPrice: decimal.NewFromInt(350), SellingPrice: decimal.NewFromInt(699), Supplier: "LightCo"},
}
