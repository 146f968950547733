package handlers

import (
	"net/http"

	"shop-service/internal/dto"
	"shop-service/internal/middleware"
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	svc *service.CartService
	log *zap.Logger
}

func NewCartHandler(svc *service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{svc: svc, log: log}
}

// Add godoc
// @Summary Добавление товара в корзину
// @Description Цена фиксируется при первом добавлении; повторные вызовы наращивают количество.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.CartAddRequest true "Позиция"
// @Success 200 {object} dto.CartCountResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Security BearerAuth
// @Router /api/v1/cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product_id", nil))
		return
	}
	sid := middleware.SessionID(c)
	if err := h.svc.AddItem(c.Request.Context(), sid, productID, req.Quantity); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	h.respondCount(c, sid)
}

// Update godoc
// @Summary Абсолютное изменение количества позиции
// @Description Количество меньше 1 удаляет позицию из корзины.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.CartUpdateRequest true "Позиция"
// @Success 200 {object} dto.CartCountResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /api/v1/cart/items [put]
func (h *CartHandler) Update(c *gin.Context) {
	var req dto.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product_id", nil))
		return
	}
	sid := middleware.SessionID(c)
	if err := h.svc.UpdateItem(c.Request.Context(), sid, productID, req.Quantity); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	h.respondCount(c, sid)
}

// Remove godoc
// @Summary Удаление позиции из корзины
// @Description Отсутствующая позиция — тихий no-op.
// @Tags cart
// @Produce json
// @Param productID path string true "ID товара"
// @Success 200 {object} dto.CartCountResponse
// @Security BearerAuth
// @Router /api/v1/cart/items/{productID} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	productID, ok := paramUUID(c, "productID")
	if !ok {
		return
	}
	sid := middleware.SessionID(c)
	if err := h.svc.RemoveItem(c.Request.Context(), sid, productID); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	h.respondCount(c, sid)
}

// Count godoc
// @Summary Суммарное количество единиц в корзине
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartCountResponse
// @Security BearerAuth
// @Router /api/v1/cart/count [get]
func (h *CartHandler) Count(c *gin.Context) {
	h.respondCount(c, middleware.SessionID(c))
}

// View godoc
// @Summary Содержимое корзины с текущими данными товаров
// @Tags cart
// @Produce json
// @Success 200 {object} service.CartView
// @Security BearerAuth
// @Router /api/v1/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	view, err := h.svc.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) respondCount(c *gin.Context, sid string) {
	count, err := h.svc.Count(c.Request.Context(), sid)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartCountResponse{Count: count})
}
