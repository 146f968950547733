package handlers

import (
	"net/http"

	"shop-service/internal/dto"
	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CouponHandler struct {
	svc *service.CouponService
	log *zap.Logger
}

func NewCouponHandler(svc *service.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{svc: svc, log: log}
}

// Create godoc
// @Summary Выпуск купона
// @Description Код генерируется сервером, rarity выводится из номинала.
// @Tags coupons
// @Accept json
// @Produce json
// @Param coupon body dto.CreateCouponRequest true "Номинал"
// @Success 200 {object} dto.CouponResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Security BearerAuth
// @Router /api/v1/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	coupon, err := h.svc.CreateCoupon(c.Request.Context(), req.Amount)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCouponResponse(coupon))
}

// Check godoc
// @Summary Проверка купона по коду
// @Description Только чтение: купон не расходуется.
// @Tags coupons
// @Produce json
// @Param code path string true "Код купона"
// @Success 200 {object} dto.CouponCheckResponse
// @Security BearerAuth
// @Router /api/v1/coupons/check/{code} [get]
func (h *CouponHandler) Check(c *gin.Context) {
	check, err := h.svc.CheckCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CouponCheckResponse{Valid: check.Valid, Amount: check.Amount})
}

// List godoc
// @Summary Список купонов
// @Tags coupons
// @Produce json
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} dto.CouponListResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Security BearerAuth
// @Router /api/v1/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	limit, offset := paging(c)
	coupons, total, err := h.svc.ListCoupons(c.Request.Context(), limit, offset)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := dto.CouponListResponse{Coupons: make([]dto.CouponResponse, 0, len(coupons)), Total: total}
	for i := range coupons {
		out.Coupons = append(out.Coupons, toCouponResponse(&coupons[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toCouponResponse(cp *models.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:       cp.ID.String(),
		Code:     cp.Code,
		Amount:   cp.Amount,
		Rarity:   string(cp.Rarity),
		IsActive: cp.IsActive,
	}
}
