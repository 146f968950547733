package handlers

import (
	"net/http"

	"shop-service/internal/dto"
	"shop-service/internal/middleware"
	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc *service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc *service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

// Checkout godoc
// @Summary Перенос корзины в открытый заказ
// @Description Строки корзины сливаются в единственный открытый заказ пользователя,
// склад списывается атомарно; при нехватке остатка вся операция откатывается,
// корзина остаётся нетронутой.
// @Tags orders
// @Produce json
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Пустая корзина"
// @Failure 409 {object} dto.ConflictErrorResponse "Недостаточно остатка"
// @Security BearerAuth
// @Router /api/v1/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	ord, err := h.svc.Checkout(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(ord))
}

// ActiveOrder godoc
// @Summary Текущий открытый заказ пользователя
// @Tags orders
// @Produce json
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Security BearerAuth
// @Router /api/v1/orders/active [get]
func (h *OrderHandler) ActiveOrder(c *gin.Context) {
	ord, err := h.svc.ActiveOrder(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(ord))
}

// List godoc
// @Summary Список заказов
// @Description Обычный пользователь видит свои заказы, роль с manage_orders — все.
// @Tags orders
// @Produce json
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} dto.OrderListResponse
// @Security BearerAuth
// @Router /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	limit, offset := paging(c)
	orders, total, err := h.svc.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(orders)), Total: total}
	for i := range orders {
		out.Orders = append(out.Orders, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Confirm godoc
// @Summary Подтверждение открытого заказа
// @Description Требует активный адрес доставки. Невалидный купон молча игнорируется,
// итог с купоном не опускается ниже нуля. Заказ и купон деактивируются.
// @Tags orders
// @Accept json
// @Produce json
// @Param confirm body dto.ConfirmOrderRequest false "Купон"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Нет активного адреса"
// @Failure 404 {object} dto.NotFoundErrorResponse "Нет открытого заказа"
// @Security BearerAuth
// @Router /api/v1/orders/confirm [post]
func (h *OrderHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindJSONError(c, h.log, err)
			return
		}
	}
	rec, err := h.svc.Confirm(c.Request.Context(), req.CouponCode)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{
		ID:              rec.ID.String(),
		OrderID:         rec.OrderID.String(),
		AddressID:       rec.AddressID.String(),
		CouponID:        strPtr(rec.CouponID),
		TotalPriceCents: rec.TotalPriceCents,
	})
}

func toOrderResponse(o *models.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:              o.ID.String(),
		UserID:          o.UserID.String(),
		TotalPriceCents: o.TotalPriceCents,
		IsActive:        o.IsActive,
		OrderDate:       o.OrderDate,
		Items:           make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	for i := range o.Items {
		it := &o.Items[i]
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID:  it.ProductID.String(),
			Quantity:   it.Quantity,
			PriceCents: it.PriceCents,
		})
	}
	return resp
}
