package service

import (
	"context"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

type WishlistService struct {
	wishlists repository.WishlistRepo
	products  repository.ProductRepo
}

func NewWishlistService(wishlists repository.WishlistRepo, products repository.ProductRepo) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

func (s *WishlistService) Add(ctx context.Context, productID uuid.UUID) error {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	return s.wishlists.Add(ctx, userID, productID)
}

func (s *WishlistService) Remove(ctx context.Context, productID uuid.UUID) (bool, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return false, err
	}
	return s.wishlists.Remove(ctx, userID, productID)
}

func (s *WishlistService) List(ctx context.Context) ([]models.Wishlist, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	return s.wishlists.ListByUser(ctx, userID)
}
