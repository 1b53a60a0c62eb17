package models

import "time"

// Common property-type tags. The key is free-form; these are the ones the
// scoring frontends send today.
const (
	PropertyTypeOffice      = "office"
	PropertyTypeRetail      = "retail"
	PropertyTypeIndustrial  = "industrial"
	PropertyTypeMultifamily = "multifamily"
	PropertyTypeHotel       = "hotel"
)

// WeightProfile holds a user's custom score weighting for one property type.
// Exactly one profile may exist per (UserID, PropertyType) pair; writes are
// upserts against that key.
type WeightProfile struct {
	UserID       string
	PropertyType string

	Business    float64
	Amenity     float64
	Transit     float64
	Employment  float64
	Demographic float64
	Housing     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
