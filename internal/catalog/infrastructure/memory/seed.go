package memory

import (
	"github.com/shopspring/decimal"

	"github.com/sahilmehra/zaika/internal/catalog/domain"
)

var standardGST = decimal.NewFromInt(5)

// SeedMenu is the launch menu loaded at startup.
func SeedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:          "1",
			Name:        "Truffle Mushroom Risotto",
			Description: "Creamy arborio rice with wild mushrooms and white truffle oil.",
			Price:       decimal.RequireFromString("18.99"),
			Category:    "Main Course",
			ImageURL:    "https://picsum.photos/seed/risotto/400/300",
			Available:   true,
			Veg:         true,
			TaxRate:     standardGST,
		},
		{
			ID:          "2",
			Name:        "Spicy Dragon Wings",
			Description: "Crispy chicken wings tossed in our signature ghost pepper sauce.",
			Price:       decimal.RequireFromString("12.50"),
			Category:    "Starters",
			ImageURL:    "https://picsum.photos/seed/wings/400/300",
			Available:   true,
			Spicy:       true,
			TaxRate:     standardGST,
		},
		{
			ID:          "3",
			Name:        "Grilled Salmon Bowl",
			Description: "Fresh Atlantic salmon with quinoa, avocado, and lime dressing.",
			Price:       decimal.RequireFromString("22.00"),
			Category:    "Main Course",
			ImageURL:    "https://picsum.photos/seed/salmon/400/300",
			Available:   true,
			TaxRate:     standardGST,
		},
		{
			ID:          "4",
			Name:        "Belgian Chocolate Lava Cake",
			Description: "Warm dark chocolate cake with a molten center and vanilla bean gelato.",
			Price:       decimal.RequireFromString("9.99"),
			Category:    "Desserts",
			ImageURL:    "https://picsum.photos/seed/cake/400/300",
			Available:   true,
			Veg:         true,
			TaxRate:     standardGST,
		},
		{
			ID:          "5",
			Name:        "Artisan Garlic Bread",
			Description: "Sourdough bread toasted with garlic butter and garden herbs.",
			Price:       decimal.RequireFromString("6.50"),
			Category:    "Starters",
			ImageURL:    "https://picsum.photos/seed/bread/400/300",
			Available:   true,
			Veg:         true,
			TaxRate:     standardGST,
		},
		{
			ID:          "6",
			Name:        "Iced Matcha Latte",
			Description: "Premium ceremonial grade matcha whisked with oat milk.",
			Price:       decimal.RequireFromString("5.75"),
			Category:    "Beverages",
			ImageURL:    "https://picsum.photos/seed/matcha/400/300",
			Available:   true,
			Veg:         true,
			TaxRate:     standardGST,
		},
	}
}
