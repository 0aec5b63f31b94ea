package seed

import (
	"testing"

	"kirana/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Len(t, ds.Categories, 6)
	assert.Len(t, ds.Products, 6)
	assert.Len(t, ds.Prices, 6)
	assert.Len(t, ds.Milestones, 5)
	assert.Len(t, ds.Locations, 1)

	assert.Equal(t, "rice", ds.Categories[0].Slug)
	require.NotNil(t, ds.Categories[0].Description)
	assert.Equal(t, "Premium Basmati and staple grains", *ds.Categories[0].Description)

	basmati := ds.Products[0]
	assert.Equal(t, "basmati-rice", basmati.Slug)
	assert.Equal(t, "Royal Basmati Rice", basmati.Name)
	assert.Equal(t, "rice", basmati.CategorySlug)
	assert.Equal(t, "150.00", basmati.Price)
	assert.True(t, basmati.IsPopular)

	assert.Equal(t, model.TrendUp, ds.Prices[0].Trend)
	assert.Equal(t, "1987", ds.Milestones[0].Year)
	assert.Equal(t, "23.5969,72.9631", ds.Locations[0].Coordinates)
}

func TestParse_Valid(t *testing.T) {
	data := []byte(`
categories:
  - name: Snacks
    slug: snacks
    imageUrl: snacks.png
products:
  - name: Bhujia
    slug: bhujia
    description: Crisp gram flour noodles
    price: "45.5"
    category: snacks
    imageUrl: bhujia.png
prices:
  - itemName: Sugar
    price: "42"
    unit: 1kg
    trend: stable
`)

	ds, err := Parse(data)
	require.NoError(t, err)

	assert.Nil(t, ds.Categories[0].Description)
	assert.False(t, ds.Products[0].IsPopular)
	assert.Equal(t, "45.50", ds.Products[0].Price)
	assert.Equal(t, "42.00", ds.Prices[0].Price)
	assert.Empty(t, ds.Milestones)
	assert.Empty(t, ds.Locations)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		errMatch string
	}{
		{
			name: "duplicate category slug",
			data: `
categories:
  - {name: Rice, slug: rice, imageUrl: a.png}
  - {name: More Rice, slug: rice, imageUrl: b.png}
`,
			errMatch: `duplicate slug "rice"`,
		},
		{
			name: "duplicate product slug",
			data: `
categories:
  - {name: Rice, slug: rice, imageUrl: a.png}
products:
  - {name: A, slug: basmati, description: d, price: "1", category: rice, imageUrl: a.png}
  - {name: B, slug: basmati, description: d, price: "2", category: rice, imageUrl: b.png}
`,
			errMatch: `duplicate slug "basmati"`,
		},
		{
			name: "orphaned product category",
			data: `
categories:
  - {name: Rice, slug: rice, imageUrl: a.png}
products:
  - {name: A, slug: ghee, description: d, price: "1", category: oils, imageUrl: a.png}
`,
			errMatch: `unknown category "oils"`,
		},
		{
			name: "negative price",
			data: `
prices:
  - {itemName: Sugar, price: "-4", unit: 1kg, trend: down}
`,
			errMatch: "is negative",
		},
		{
			name: "non-decimal price",
			data: `
prices:
  - {itemName: Sugar, price: "cheap", unit: 1kg, trend: down}
`,
			errMatch: "not a decimal number",
		},
		{
			name: "unknown trend",
			data: `
prices:
  - {itemName: Sugar, price: "4", unit: 1kg, trend: sideways}
`,
			errMatch: "must be up, down or stable",
		},
		{
			name: "missing milestone title",
			data: `
milestones:
  - {year: "1987", description: founded}
`,
			errMatch: "year, title and description are required",
		},
		{
			name: "missing location phone",
			data: `
locations:
  - {branchName: Main, address: Station Rd, coordinates: "1,2"}
`,
			errMatch: "branchName, address, phone and coordinates are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse([]byte(tt.data))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFixture)
			assert.Contains(t, err.Error(), tt.errMatch)
			assert.Nil(t, ds)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - {name: Rice, slug: rice, imageUrl: a.png, colour: red}
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seed fixtures")
}

func TestNormalisePrice(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		wantErr  bool
	}{
		{raw: "150.00", expected: "150.00"},
		{raw: "150", expected: "150.00"},
		{raw: "0", expected: "0.00"},
		{raw: "42.5", expected: "42.50"},
		{raw: "-0.01", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "1,50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalisePrice(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidate_LeavesDatasetUnchanged(t *testing.T) {
	ds := &Dataset{
		Categories: []Category{{Name: "Snacks", Slug: "snacks", ImageURL: "snacks.png"}},
		Products: []Product{
			{Name: "Bhujia", Slug: "bhujia", Description: "Crisp", Price: "45.5", CategorySlug: "snacks", ImageURL: "bhujia.png"},
		},
		Prices: []PriceEntry{{ItemName: "Sugar", Price: "42", Unit: "1kg", Trend: model.TrendStable}},
	}

	require.NoError(t, ds.Validate())
	require.NoError(t, ds.Validate())

	assert.Equal(t, "45.5", ds.Products[0].Price)
	assert.Equal(t, "42", ds.Prices[0].Price)
}
