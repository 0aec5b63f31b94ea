package model

import "time"

// Trend is the recent direction of a ticker price.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Valid reports whether t is one of the three known literals.
func (t Trend) Valid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	}
	return false
}

// PriceEntry is the current market rate of a staple shown on the price ticker.
type PriceEntry struct {
	ID        int       `json:"id" db:"id"`
	ItemName  string    `json:"itemName" db:"item_name"`
	Price     string    `json:"price" db:"price"`
	Unit      string    `json:"unit" db:"unit"`
	Trend     Trend     `json:"trend" db:"trend"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Milestone is one entry of the company timeline.
type Milestone struct {
	ID          int    `json:"id" db:"id"`
	Year        string `json:"year" db:"year"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

// Location is a store branch.
type Location struct {
	ID          int    `json:"id" db:"id"`
	BranchName  string `json:"branchName" db:"branch_name"`
	Address     string `json:"address" db:"address"`
	Phone       string `json:"phone" db:"phone"`
	Coordinates string `json:"coordinates" db:"coordinates"`
}
