// Package data holds the static seed catalog loaded by the destructive
// /api/sync-products bulk sync.
package data

import (
	"github.com/shopspring/decimal"

	"github.com/devshahzaibali/FSH-Traders/models"
)

type SeedCategory struct {
	Name  string
	Image string
}

var Categories = []SeedCategory{
	{Name: "Electronics", Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400&h=300&fit=crop"},
	{Name: "Clothing", Image: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=300&fit=crop"},
	{Name: "Home & Garden", Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop"},
	{Name: "Sports & Outdoors", Image: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop"},
	{Name: "Books", Image: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=300&fit=crop"},
	{Name: "Health & Beauty", Image: "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=300&fit=crop"},
	{Name: "Toys & Games", Image: "https://images.unsplash.com/photo-1566576912321-d58ddd7a6088?w=400&h=300&fit=crop"},
	{Name: "Office Supplies", Image: "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=400&h=300&fit=crop"},
}

var Catalog = []models.Product{
	{
		ID:          "wireless-earbuds-pro",
		Name:        "Wireless Earbuds Pro",
		Description: "Noise-cancelling earbuds with 24h battery life.",
		Price:       decimal.RequireFromString("79.99"),
		Category:    "Electronics",
		Stock:       120,
		Featured:    true,
	},
	{
		ID:          "smart-watch-fit",
		Name:        "Smart Watch Fit",
		Description: "Fitness tracking, heart-rate monitor, sleep insights.",
		Price:       decimal.RequireFromString("129.00"),
		Category:    "Electronics",
		Stock:       80,
		Featured:    true,
	},
	{
		ID:          "classic-denim-jacket",
		Name:        "Classic Denim Jacket",
		Description: "Mid-weight denim jacket in a relaxed fit.",
		Price:       decimal.RequireFromString("59.50"),
		Category:    "Clothing",
		Stock:       45,
	},
	{
		ID:          "cotton-crew-tshirt",
		Name:        "Cotton Crew T-Shirt",
		Description: "Heavyweight combed cotton, pre-shrunk.",
		Price:       decimal.RequireFromString("18.00"),
		Category:    "Clothing",
		Stock:       300,
	},
	{
		ID:          "ceramic-plant-pot-set",
		Name:        "Ceramic Plant Pot Set",
		Description: "Set of three glazed pots with drainage trays.",
		Price:       decimal.RequireFromString("34.25"),
		Category:    "Home & Garden",
		Stock:       60,
	},
	{
		ID:          "yoga-mat-grip",
		Name:        "Yoga Mat Grip+",
		Description: "6mm non-slip mat with carry strap.",
		Price:       decimal.RequireFromString("27.90"),
		Category:    "Sports & Outdoors",
		Stock:       150,
		Featured:    true,
	},
	{
		ID:          "trail-water-bottle",
		Name:        "Trail Water Bottle 1L",
		Description: "Insulated stainless steel, keeps cold 24h.",
		Price:       decimal.RequireFromString("22.00"),
		Category:    "Sports & Outdoors",
		Stock:       200,
	},
	{
		ID:          "atlas-of-world-cuisine",
		Name:        "Atlas of World Cuisine",
		Description: "Hardcover, 320 pages of recipes and food history.",
		Price:       decimal.RequireFromString("42.00"),
		Category:    "Books",
		Stock:       35,
	},
	{
		ID:          "vitamin-c-serum",
		Name:        "Vitamin C Serum",
		Description: "Brightening facial serum, 30ml.",
		Price:       decimal.RequireFromString("24.99"),
		Category:    "Health & Beauty",
		Stock:       90,
	},
	{
		ID:          "wooden-block-puzzle",
		Name:        "Wooden Block Puzzle",
		Description: "54-piece hardwood brain teaser.",
		Price:       decimal.RequireFromString("15.75"),
		Category:    "Toys & Games",
		Stock:       110,
	},
	{
		ID:          "desk-organizer-bamboo",
		Name:        "Bamboo Desk Organizer",
		Description: "Five-compartment organizer with phone stand.",
		Price:       decimal.RequireFromString("31.50"),
		Category:    "Office Supplies",
		Stock:       70,
	},
	{
		ID:          "mechanical-keyboard-87",
		Name:        "Mechanical Keyboard 87-Key",
		Description: "Tenkeyless layout, hot-swappable switches.",
		Price:       decimal.RequireFromString("95.00"),
		Category:    "Electronics",
		Stock:       40,
	},
}
