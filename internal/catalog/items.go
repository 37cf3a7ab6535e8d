package catalog

import "github.com/Bhuvana30-web/my-waydukaan/internal/domain"

// subcategoryItems is the local static dataset backing subcategory pages.
// Subcategory listings come from here; category listings come from the
// remote catalog.
var subcategoryItems = map[string][]domain.Candidate{
	"fresh-fruits": {
		{ID: "ff-1", Name: "Banana Robusta", Price: 48, Category: "Fruits & Vegetables", Description: "Fresh robusta bananas, 1 kg", Stock: 20},
		{ID: "ff-2", Name: "Apple Shimla", Price: 180, Category: "Fruits & Vegetables", Description: "Crisp Shimla apples, 1 kg", Stock: 15},
		{ID: "ff-3", Name: "Pomegranate", Price: 150, Category: "Fruits & Vegetables", Description: "Juicy pomegranates, 500 g"},
	},
	"fresh-vegetables": {
		{ID: "fv-1", Name: "Tomato Hybrid", Price: 35, Category: "Fruits & Vegetables", Description: "Farm fresh tomatoes, 1 kg", Stock: 25},
		{ID: "fv-2", Name: "Onion", Price: 40, Category: "Fruits & Vegetables", Description: "Medium onions, 1 kg", Stock: 25},
		{ID: "fv-3", Name: "Potato", Price: 32, Category: "Fruits & Vegetables", Description: "Fresh potatoes, 1 kg"},
	},
	"hair-care": {
		{ID: "hc-1", Name: "Herbal Shampoo", Price: 210, Category: "Beauty & Hygiene", Description: "Anti-dandruff herbal shampoo, 340 ml", Discount: "10% off"},
		{ID: "hc-2", Name: "Coconut Hair Oil", Price: 95, Category: "Beauty & Hygiene", Description: "Pure coconut hair oil, 200 ml"},
	},
	"skin-care": {
		{ID: "sc-1", Name: "Aloe Vera Gel", Price: 160, Category: "Beauty & Hygiene", Description: "Soothing aloe vera gel, 150 ml"},
		{ID: "sc-2", Name: "Moisturising Lotion", Price: 240, Category: "Beauty & Hygiene", Description: "Daily moisturising lotion, 250 ml"},
	},
	"mens-grooming": {
		{ID: "mg-1", Name: "Shaving Foam", Price: 185, Category: "Beauty & Hygiene", Description: "Sensitive skin shaving foam, 250 g"},
		{ID: "mg-2", Name: "Beard Trimming Kit", Price: 899, Category: "Beauty & Hygiene", Description: "Cordless beard trimmer with combs", Stock: 5},
	},
	"fragrances-deos": {
		{ID: "fd-1", Name: "Citrus Deodorant", Price: 199, Category: "Beauty & Hygiene", Description: "Long-lasting citrus deo, 150 ml"},
		{ID: "fd-2", Name: "Eau de Parfum", Price: 650, Category: "Beauty & Hygiene", Description: "Floral eau de parfum, 50 ml", Tag: "bestseller"},
	},
	"energy-soft-drinks": {
		{ID: "ed-1", Name: "Cola Can Pack", Price: 120, Category: "Beverages", Description: "Pack of 4 cola cans, 300 ml each"},
		{ID: "ed-2", Name: "Energy Drink", Price: 110, Category: "Beverages", Description: "Energy drink, 250 ml"},
		{ID: "ed-3", Name: "Lemon Soda", Price: 40, Category: "Beverages", Description: "Sparkling lemon soda, 600 ml"},
	},
	"all-purpose-cleaners": {
		{ID: "ac-1", Name: "Floor Cleaner", Price: 168, Category: "Cleaning & Household", Description: "Citrus floor cleaner, 975 ml"},
		{ID: "ac-2", Name: "Glass Cleaner", Price: 85, Category: "Cleaning & Household", Description: "Streak-free glass cleaner, 500 ml"},
	},
	"detergents-dishwash": {
		{ID: "dd-1", Name: "Detergent Powder", Price: 250, Category: "Cleaning & Household", Description: "Top-load detergent powder, 2 kg"},
		{ID: "dd-2", Name: "Dishwash Liquid", Price: 99, Category: "Cleaning & Household", Description: "Lemon dishwash gel, 750 ml"},
	},
	"bakery-snacks": {
		{ID: "bs-1", Name: "Whole Wheat Bread", Price: 45, Category: "Bakery, Cakes & Dairy", Description: "Soft whole wheat bread, 400 g"},
		{ID: "bs-2", Name: "Multigrain Rusk", Price: 60, Category: "Bakery, Cakes & Dairy", Description: "Crunchy multigrain rusk, 300 g"},
	},
	"cakes-pastries": {
		{ID: "cp-1", Name: "Chocolate Brownie", Price: 90, Category: "Bakery, Cakes & Dairy", Description: "Fudgy chocolate brownie, 2 pieces"},
		{ID: "cp-2", Name: "Fruit Cake Slice", Price: 55, Category: "Bakery, Cakes & Dairy", Description: "Classic fruit cake slice, 150 g"},
	},
	"dairy": {
		{ID: "dy-1", Name: "Toned Milk", Price: 27, Category: "Bakery, Cakes & Dairy", Description: "Toned milk pouch, 500 ml", Stock: 30},
		{ID: "dy-2", Name: "Curd", Price: 35, Category: "Bakery, Cakes & Dairy", Description: "Fresh curd cup, 400 g"},
		{ID: "dy-3", Name: "Paneer", Price: 85, Category: "Bakery, Cakes & Dairy", Description: "Fresh malai paneer, 200 g"},
	},
	"dals-pulses": {
		{ID: "dp-1", Name: "Toor Dal", Price: 160, Category: "Foodgrains, Oil & Masala", Description: "Unpolished toor dal, 1 kg"},
		{ID: "dp-2", Name: "Moong Dal", Price: 140, Category: "Foodgrains, Oil & Masala", Description: "Yellow moong dal, 1 kg"},
	},
	"edible-oils-ghee": {
		{ID: "eo-1", Name: "Sunflower Oil", Price: 155, Category: "Foodgrains, Oil & Masala", Description: "Refined sunflower oil, 1 l"},
		{ID: "eo-2", Name: "Pure Cow Ghee", Price: 620, Category: "Foodgrains, Oil & Masala", Description: "Pure cow ghee, 1 l", Tag: "premium"},
	},
	"rice-products": {
		{ID: "rp-1", Name: "Basmati Rice", Price: 220, Category: "Foodgrains, Oil & Masala", Description: "Aged basmati rice, 1 kg"},
		{ID: "rp-2", Name: "Sona Masoori Rice", Price: 95, Category: "Foodgrains, Oil & Masala", Description: "Sona masoori rice, 1 kg"},
		{ID: "rp-3", Name: "Poha", Price: 48, Category: "Foodgrains, Oil & Masala", Description: "Thick poha, 500 g"},
	},
	"masala-products": {
		{ID: "mp-1", Name: "Garam Masala", Price: 72, Category: "Foodgrains, Oil & Masala", Description: "Ground garam masala, 100 g"},
		{ID: "mp-2", Name: "Turmeric Powder", Price: 56, Category: "Foodgrains, Oil & Masala", Description: "Pure turmeric powder, 200 g"},
	},
	"noodle-pasta-vermicelli": {
		{ID: "np-1", Name: "Instant Noodles", Price: 56, Category: "Snacks & Branded Foods", Description: "Masala instant noodles, pack of 4"},
		{ID: "np-2", Name: "Penne Pasta", Price: 110, Category: "Snacks & Branded Foods", Description: "Durum wheat penne, 500 g"},
		{ID: "np-3", Name: "Roasted Vermicelli", Price: 45, Category: "Snacks & Branded Foods", Description: "Roasted vermicelli, 450 g"},
	},
}

// SubcategoryItems returns the static item list for a subcategory id.
func SubcategoryItems(subcategoryID string) ([]domain.Candidate, bool) {
	items, ok := subcategoryItems[subcategoryID]
	return items, ok
}
