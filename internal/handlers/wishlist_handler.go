package handlers

import (
	"net/http"

	"shop-service/internal/dto"
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	svc *service.WishlistService
	log *zap.Logger
}

func NewWishlistHandler(svc *service.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{svc: svc, log: log}
}

// Add godoc
// @Summary Добавление товара в избранное
// @Tags wishlist
// @Accept json
// @Produce json
// @Param item body dto.WishlistAddRequest true "Товар"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Security BearerAuth
// @Router /api/v1/wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.WishlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product_id", nil))
		return
	}
	if err := h.svc.Add(c.Request.Context(), productID); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Remove godoc
// @Summary Удаление товара из избранного
// @Tags wishlist
// @Produce json
// @Param productID path string true "ID товара"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /api/v1/wishlist/{productID} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, ok := paramUUID(c, "productID")
	if !ok {
		return
	}
	removed, err := h.svc.Remove(c.Request.Context(), productID)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// List godoc
// @Summary Избранное текущего пользователя
// @Tags wishlist
// @Produce json
// @Success 200 {object} dto.WishlistResponse
// @Security BearerAuth
// @Router /api/v1/wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := dto.WishlistResponse{Items: make([]dto.WishlistItemResponse, 0, len(items))}
	for i := range items {
		out.Items = append(out.Items, dto.WishlistItemResponse{
			ProductID: items[i].ProductID.String(),
			AddedAt:   items[i].CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
