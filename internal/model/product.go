package model

// Product represents a single record in the product catalogue.
// The JSON key order matches the on-disk layout of the data file.
type Product struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"inStock"`
}
