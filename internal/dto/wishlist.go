package dto

import "time"

type WishlistAddRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

type WishlistItemResponse struct {
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
}
