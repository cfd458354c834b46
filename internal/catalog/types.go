// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package catalog

import "time"

// Book is a flattened catalog record with author and category names already
// attached. Missing strings are empty and missing numbers are zero; the
// recommendation model tolerates both.
type Book struct {
	// ID is the unique book identifier.
	ID string `json:"id"`

	// Title is the book title.
	Title string `json:"title"`

	// Description is the free-text description.
	Description string `json:"description"`

	// Tags is the free-text tag list.
	Tags []string `json:"tags,omitempty"`

	// CategoryName is the resolved category name.
	CategoryName string `json:"category_name,omitempty"`

	// AuthorName is the resolved author name.
	AuthorName string `json:"author_name,omitempty"`

	// Price is the list price in VND.
	Price float64 `json:"price,omitempty"`

	// Rating is the average review rating (0-5).
	Rating float64 `json:"rating,omitempty"`

	// NumReviews is the review count.
	NumReviews int `json:"num_reviews,omitempty"`

	// Trending is the manually curated trending flag.
	Trending bool `json:"trending,omitempty"`

	// CreatedAt is when the book entered the catalog.
	CreatedAt time.Time `json:"created_at,omitempty"`

	// UpdatedAt is when the record was last modified.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// SearchText concatenates the textual and categorical attributes the
// content model indexes, space-joined in a fixed order.
func (b Book) SearchText() string {
	text := b.Title + " " + b.Description
	for _, tag := range b.Tags {
		text += " " + tag
	}
	return text + " " + b.CategoryName + " " + b.AuthorName
}
