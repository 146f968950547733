package dto

type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	ParentID *string `json:"parent_id,omitempty" binding:"omitempty,uuid"`
}

type CategoryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CreateProductRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required"`
	About      string `json:"about"`
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
	Quantity   int64  `json:"quantity" binding:"gte=0"`
	IsActive   bool   `json:"is_active"`
}

type ProductResponse struct {
	ID                  string `json:"id"`
	CategoryID          string `json:"category_id"`
	Name                string `json:"name"`
	About               string `json:"about,omitempty"`
	PriceCents          int64  `json:"price_cents"`
	EffectivePriceCents int64  `json:"effective_price_cents"`
	DiscountPercent     *int64 `json:"discount_percent,omitempty"`
	Quantity            int64  `json:"quantity"`
	IsActive            bool   `json:"is_active"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}

type SetDiscountRequest struct {
	Percentage int64 `json:"percentage" binding:"gte=0,lte=100"`
}
