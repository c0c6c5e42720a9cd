package dto

// CreateCategoryRequest is the body of POST /admin/categories
type CreateCategoryRequest struct {
	Slug  string `json:"slug" binding:"required,slug"`
	Label string `json:"label" binding:"required"`
}

// CreateItemRequest is the body of POST /admin/menu/items. CategoryID carries
// the owning category's external slug.
type CreateItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Calories   *int   `json:"calories" binding:"required,gte=0"`
	ImagePath  string `json:"imagePath" binding:"required"`
	Hidden     bool   `json:"hidden"`
	CategoryID string `json:"categoryId" binding:"required"`
}

// UpdateItemRequest is the sparse body of PATCH /admin/menu/items/{id}
type UpdateItemRequest struct {
	Name      *string `json:"name"`
	Calories  *int    `json:"calories"`
	ImagePath *string `json:"imagePath"`
	Hidden    *bool   `json:"hidden"`
}

// ReorderRequest is the body of POST /admin/menu/order. An empty order list
// clears the category's explicit ordering.
type ReorderRequest struct {
	CategoryID string   `json:"categoryId" binding:"required"`
	Order      []string `json:"order"`
}

// SaveProfileRequest is the sparse body of POST /profile
type SaveProfileRequest struct {
	Age      *int     `json:"age" binding:"omitempty,gt=0,lte=150"`
	Weight   *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height   *float64 `json:"height" binding:"omitempty,gt=0"`
	Gender   *string  `json:"gender"`
	Username *string  `json:"username"`
	PhotoURL *string  `json:"photoUrl"`
}
