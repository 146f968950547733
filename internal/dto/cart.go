package dto

type CartAddRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  uint32 `json:"quantity" binding:"required,gte=1"`
}

// CartUpdateRequest задаёт абсолютное количество; значение меньше 1
// убирает позицию из корзины.
type CartUpdateRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

type CartRemoveRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

type CartCountResponse struct {
	Count uint32 `json:"count"`
}
