package entity

// Property is the aggregate root for the listings domain.
// ID is assigned by the database on insert and never changes afterwards.
type Property struct {
	ID          int64
	Address     string
	City        string
	Price       float64
	Bedrooms    int
	Bathrooms   int
	ImageURL    string
	Description string
}
