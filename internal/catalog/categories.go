package catalog

// The category tree is static navigation data: category -> subcategory ->
// item list. The remote catalog is flat; products are matched to this tree by
// category name.

type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Subcategories []Subcategory `json:"subcategories"`
}

var Categories = []Category{
	{
		ID:   "fruits-vegetables",
		Name: "Fruits & Vegetables",
		Icon: "🥬",
		Subcategories: []Subcategory{
			{ID: "fresh-fruits", Name: "Fresh Fruits", Description: "Fresh and organic fruits"},
			{ID: "fresh-vegetables", Name: "Fresh Vegetables", Description: "Fresh and organic vegetables"},
		},
	},
	{
		ID:   "beauty-hygiene",
		Name: "Beauty & Hygiene",
		Icon: "🧴",
		Subcategories: []Subcategory{
			{ID: "hair-care", Name: "Hair Care", Description: "Professional hair care products"},
			{ID: "skin-care", Name: "Skin Care", Description: "Premium skin care products"},
			{ID: "mens-grooming", Name: "Men's Grooming", Description: "Men's grooming essentials"},
			{ID: "fragrances-deos", Name: "Fragrances & Deos", Description: "Perfumes and deodorants"},
		},
	},
	{
		ID:   "beverages",
		Name: "Beverages",
		Icon: "🥤",
		Subcategories: []Subcategory{
			{ID: "energy-soft-drinks", Name: "Energy & Soft Drinks", Description: "Refreshing drinks for every mood"},
		},
	},
	{
		ID:   "cleaning-household",
		Name: "Cleaning & Household",
		Icon: "🏠",
		Subcategories: []Subcategory{
			{ID: "all-purpose-cleaners", Name: "All Purpose Cleaners", Description: "Multi-purpose cleaning solutions"},
			{ID: "detergents-dishwash", Name: "Detergents & Dishwash", Description: "Laundry and dishwashing products"},
		},
	},
	{
		ID:   "bakery-cakes-dairy",
		Name: "Bakery, Cakes & Dairy",
		Icon: "🥖",
		Subcategories: []Subcategory{
			{ID: "bakery-snacks", Name: "Bakery Snacks", Description: "Freshly baked bread and snacks"},
			{ID: "cakes-pastries", Name: "Cakes & Pastries", Description: "Delicious cakes and pastries"},
			{ID: "dairy", Name: "Dairy", Description: "Fresh dairy products and milk"},
		},
	},
	{
		ID:   "foodgrains-oil-masala",
		Name: "Foodgrains, Oil & Masala",
		Icon: "🌾",
		Subcategories: []Subcategory{
			{ID: "dals-pulses", Name: "Dals & Pulses", Description: "High-quality pulses and lentils"},
			{ID: "edible-oils-ghee", Name: "Edible Oils & Ghee", Description: "Pure cooking oils and ghee"},
			{ID: "rice-products", Name: "Rice & Rice Products", Description: "Premium quality rice and rice products"},
			{ID: "masala-products", Name: "Masala & Masala Products", Description: "Premium quality masalas and masala products"},
		},
	},
	{
		ID:   "snacks-branded-foods",
		Name: "Snacks & Branded Foods",
		Icon: "🍿",
		Subcategories: []Subcategory{
			{ID: "noodle-pasta-vermicelli", Name: "Noodle, Pasta, Vermicelli", Description: "Instant noodles, pasta, and vermicelli"},
		},
	},
}

// FindCategory looks a category up by id.
func FindCategory(id string) (*Category, bool) {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i], true
		}
	}
	return nil, false
}

// FindSubcategory looks a subcategory up by id within this category.
func (c *Category) FindSubcategory(id string) (*Subcategory, bool) {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return &c.Subcategories[i], true
		}
	}
	return nil, false
}
