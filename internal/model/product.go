package model

// Product categories offered by the store. Free-form categories are not
// accepted; the validator enforces membership via the "category" tag.
const (
	CategoryGeneral   = "General"
	CategoryDairy     = "Dairy"
	CategoryBakery    = "Bakery"
	CategoryProduce   = "Produce"
	CategoryBeverages = "Beverages"
	CategoryHousehold = "Household"
)

var Categories = []string{
	CategoryGeneral,
	CategoryDairy,
	CategoryBakery,
	CategoryProduce,
	CategoryBeverages,
	CategoryHousehold,
}

// Product is a catalog entry. Name is unique by convention only; the backend
// does not enforce it. Price and Stock are non-negative.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"required,category"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

// ProductPatch is a sparse update for PATCH /products/:id. Nil fields are
// omitted from the request body and left untouched by the backend's merge.
type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
	Stock    *int     `json:"stock,omitempty"`
}
