package entity

import "time"

// Supplier represents a vendor that products are sourced from.
type Supplier struct {
	ID          string
	Name        string
	ContactInfo string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
