package dto

// CreateSupplierRequest body for POST /api/suppliers.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// UpdateSupplierRequest body for PUT /api/suppliers/{id}.
type UpdateSupplierRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// SupplierResponse public view of a supplier.
type SupplierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// SupplierListResponse paged supplier listing.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
