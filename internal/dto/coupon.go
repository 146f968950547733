package dto

type CreateCouponRequest struct {
	Amount int64 `json:"amount" binding:"required,gte=1,lte=1000000"`
}

type CouponResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Amount   int64  `json:"amount"`
	Rarity   string `json:"rarity"`
	IsActive bool   `json:"is_active"`
}

type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
	Total   int64            `json:"total"`
}

type CouponCheckResponse struct {
	Valid  bool  `json:"valid"`
	Amount int64 `json:"amount,omitempty"`
}
