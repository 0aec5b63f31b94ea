// Package seed holds the initial storefront data inserted on first start.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"kirana/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// ErrInvalidFixture is wrapped by every validation failure.
var ErrInvalidFixture = errors.New("invalid seed fixture")

// Category is a category to insert; ids are assigned by the database.
type Category struct {
	Name        string  `yaml:"name"`
	Slug        string  `yaml:"slug"`
	Description *string `yaml:"description"`
	ImageURL    string  `yaml:"imageUrl"`
}

// Product refers to its category by slug, resolved to an id once categories are inserted.
type Product struct {
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	Description  string `yaml:"description"`
	Price        string `yaml:"price"`
	CategorySlug string `yaml:"category"`
	ImageURL     string `yaml:"imageUrl"`
	IsPopular    bool   `yaml:"isPopular"`
}

type PriceEntry struct {
	ItemName string      `yaml:"itemName"`
	Price    string      `yaml:"price"`
	Unit     string      `yaml:"unit"`
	Trend    model.Trend `yaml:"trend"`
}

type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Location struct {
	BranchName  string `yaml:"branchName"`
	Address     string `yaml:"address"`
	Phone       string `yaml:"phone"`
	Coordinates string `yaml:"coordinates"`
}

// Dataset is the full set of seed records, in insertion order.
type Dataset struct {
	Categories []Category   `yaml:"categories"`
	Products   []Product    `yaml:"products"`
	Prices     []PriceEntry `yaml:"prices"`
	Milestones []Milestone  `yaml:"milestones"`
	Locations  []Location   `yaml:"locations"`
}

// Default returns the built-in dataset for the Jay Kirana storefront.
func Default() (*Dataset, error) {
	return Parse(defaultFixtures)
}

// Parse decodes and validates a YAML dataset. Unknown keys are rejected.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	ds.normalisePrices()

	return &ds, nil
}

// Validate checks the invariants the store relies on: unique slugs, resolvable
// category references, non-negative decimal prices and known trend literals.
// It does not modify d.
func (d *Dataset) Validate() error {
	categorySlugs := make(map[string]struct{}, len(d.Categories))
	for i, c := range d.Categories {
		if c.Name == "" || c.Slug == "" || c.ImageURL == "" {
			return fixtureErr("category %d: name, slug and imageUrl are required", i)
		}
		if _, dup := categorySlugs[c.Slug]; dup {
			return fixtureErr("category %d: duplicate slug %q", i, c.Slug)
		}
		categorySlugs[c.Slug] = struct{}{}
	}

	productSlugs := make(map[string]struct{}, len(d.Products))
	for i, p := range d.Products {
		if p.Name == "" || p.Slug == "" || p.Description == "" || p.ImageURL == "" {
			return fixtureErr("product %d: name, slug, description and imageUrl are required", i)
		}
		if _, dup := productSlugs[p.Slug]; dup {
			return fixtureErr("product %d: duplicate slug %q", i, p.Slug)
		}
		productSlugs[p.Slug] = struct{}{}

		if _, ok := categorySlugs[p.CategorySlug]; !ok {
			return fixtureErr("product %q: unknown category %q", p.Slug, p.CategorySlug)
		}

		if _, err := NormalisePrice(p.Price); err != nil {
			return fixtureErr("product %q: %v", p.Slug, err)
		}
	}

	for i, e := range d.Prices {
		if e.ItemName == "" || e.Unit == "" {
			return fixtureErr("price %d: itemName and unit are required", i)
		}
		if !e.Trend.Valid() {
			return fixtureErr("price %q: trend %q must be up, down or stable", e.ItemName, e.Trend)
		}

		if _, err := NormalisePrice(e.Price); err != nil {
			return fixtureErr("price %q: %v", e.ItemName, err)
		}
	}

	for i, m := range d.Milestones {
		if m.Year == "" || m.Title == "" || m.Description == "" {
			return fixtureErr("milestone %d: year, title and description are required", i)
		}
	}

	for i, l := range d.Locations {
		if l.BranchName == "" || l.Address == "" || l.Phone == "" || l.Coordinates == "" {
			return fixtureErr("location %d: branchName, address, phone and coordinates are required", i)
		}
	}

	return nil
}

// normalisePrices rewrites every price with two decimal places. Prices must
// already have passed Validate.
func (d *Dataset) normalisePrices() {
	for i := range d.Products {
		d.Products[i].Price, _ = NormalisePrice(d.Products[i].Price)
	}
	for i := range d.Prices {
		d.Prices[i].Price, _ = NormalisePrice(d.Prices[i].Price)
	}
}

// NormalisePrice parses a decimal price string and renders it with two decimal places.
func NormalisePrice(raw string) (string, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("price %q is not a decimal number", raw)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("price %q is negative", raw)
	}
	return d.StringFixed(2), nil
}

func fixtureErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFixture, fmt.Sprintf(format, args...))
}
