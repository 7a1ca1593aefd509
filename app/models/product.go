package models

import "time"

// Product is a catalogue item as the inventory API serialises it.
type Product struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiryDate"`
	Image      string    `json:"image,omitempty"`
}

// Expired reports whether the product's expiry date is before now.
func (p Product) Expired(now time.Time) bool {
	return p.ExpiryDate.Before(now)
}

// ProductInput is the add-product form. The image is optional; when set
// it is the local path of the file to upload.
type ProductInput struct {
	Name       string  `json:"name"       validate:"required,min=2"`
	Price      float64 `json:"price"      validate:"required,gte=0"`
	Quantity   int     `json:"quantity"   validate:"required,gte=0"`
	ExpiryDate string  `json:"expiryDate" validate:"required,date"`
	ImagePath  string  `json:"-"          validate:"nullable"`
}

// ProductUpdate is the edit-product form, sent as the full document.
type ProductUpdate struct {
	Name       string    `json:"name"       validate:"required,min=2"`
	Price      float64   `json:"price"      validate:"required,gte=0"`
	Quantity   int       `json:"quantity"   validate:"required,gte=0"`
	ExpiryDate time.Time `json:"expiryDate"`
	Image      string    `json:"image,omitempty"`
}
