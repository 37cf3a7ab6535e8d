package domain

const (
	// DefaultStock is assumed for products that arrive without a stock
	// ceiling. Product policy, not a technical limit.
	DefaultStock = 10

	DefaultCategory = "uncategorized"
)

// Candidate is the loose product shape arriving from the catalog API or the
// static dataset. Historical data carries two id fields, two price fields and
// two image fields; Normalize reconciles them once, at the ingestion
// boundary, so nothing downstream branches on field presence.
type Candidate struct {
	ID              string  `json:"id,omitempty"`
	LegacyID        string  `json:"_id,omitempty"`
	Name            string  `json:"name,omitempty"`
	Title           string  `json:"title,omitempty"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price,omitempty"`
	DiscountedPrice float64 `json:"discountedPrice,omitempty"`
	OriginalPrice   float64 `json:"originalPrice,omitempty"`
	Image           string  `json:"image,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	Stock           int     `json:"stock,omitempty"`
	Category        string  `json:"category,omitempty"`
	Discount        string  `json:"discount,omitempty"`
	Tag             string  `json:"tag,omitempty"`
}

// LineItem is one product entry with quantity inside a cart or basket
// collection. All fields are canonical; see Normalize.
type LineItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	Quantity      int     `json:"quantity"`
	Stock         int     `json:"stock"`
	Category      string  `json:"category"`
	Discount      string  `json:"discount,omitempty"`
	Tag           string  `json:"tag,omitempty"`
}

// Normalize converts a candidate into a canonical line item with quantity 1,
// preferring the primary id/price/image fields and falling back to the
// secondary ones.
func Normalize(c Candidate) LineItem {
	id := c.ID
	if id == "" {
		id = c.LegacyID
	}
	name := c.Name
	if name == "" {
		name = c.Title
	}
	price := c.Price
	if price == 0 {
		price = c.DiscountedPrice
	}
	original := c.OriginalPrice
	if original == 0 {
		original = c.Price
	}
	image := c.Image
	if image == "" {
		image = c.ImageURL
	}
	stock := c.Stock
	if stock <= 0 {
		stock = DefaultStock
	}
	category := c.Category
	if category == "" {
		category = DefaultCategory
	}

	return LineItem{
		ID:            id,
		Name:          name,
		Description:   c.Description,
		Price:         price,
		OriginalPrice: original,
		Image:         image,
		Quantity:      1,
		Stock:         stock,
		Category:      category,
		Discount:      c.Discount,
		Tag:           c.Tag,
	}
}

// SameListing reports whether two entries refer to the same listing. The
// (id, name, category) triple is the uniqueness key within a collection.
func (li LineItem) SameListing(other LineItem) bool {
	return li.ID == other.ID && li.Name == other.Name && li.Category == other.Category
}

func (li LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Total sums price * quantity across a collection.
func Total(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.LineTotal()
	}
	return total
}

// Count sums quantities across a collection; distinct from len(items), which
// counts distinct line items.
func Count(items []LineItem) int {
	var count int
	for _, li := range items {
		count += li.Quantity
	}
	return count
}
