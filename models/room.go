package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is the inventory record behind the public rooms pages and the
// availability/booking flow. Prices are whole naira; conversion to kobo
// happens only at the payment gateway boundary.
type Room struct {
	gorm.Model

	Title       string `json:"title" gorm:"size:191"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:191"`
	Description string `json:"description" gorm:"type:text"`

	PriceNGN int64 `json:"priceNGN" gorm:"column:price_ngn"`
	Capacity int   `json:"capacity"`

	Images    datatypes.JSON `json:"images"`
	Amenities datatypes.JSON `json:"amenities"`
}
