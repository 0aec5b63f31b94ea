package model

// Category groups products on the storefront.
type Category struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Slug        string  `json:"slug" db:"slug"`
	Description *string `json:"description" db:"description"`
	ImageURL    string  `json:"imageUrl" db:"image_url"`
}

// Product represents a grocery item in the catalogue.
// CategoryID is an advisory reference to Category.ID; the database does not enforce it.
type Product struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
	Price       string `json:"price" db:"price"`
	CategoryID  int    `json:"categoryId" db:"category_id"`
	ImageURL    string `json:"imageUrl" db:"image_url"`
	IsPopular   bool   `json:"isPopular" db:"is_popular"`
}
