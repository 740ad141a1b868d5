package dto

// CreateCategoryRequest body for POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest body for PUT /api/categories/{id}.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse public view of a category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse paged category listing.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}
