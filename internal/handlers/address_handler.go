package handlers

import (
	"net/http"

	"shop-service/internal/dto"
	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AddressHandler struct {
	svc *service.AddressService
	log *zap.Logger
}

func NewAddressHandler(svc *service.AddressService, log *zap.Logger) *AddressHandler {
	return &AddressHandler{svc: svc, log: log}
}

// Create godoc
// @Summary Добавление адреса доставки
// @Description Активный адрес всегда не больше одного: при active=true остальные снимаются.
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body dto.CreateAddressRequest true "Адрес"
// @Success 200 {object} dto.AddressResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /api/v1/addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	addr, err := h.svc.CreateAddress(c.Request.Context(), service.AddressInput{
		Country: req.Country,
		City:    req.City,
		Street:  req.Street,
		Zipcode: req.Zipcode,
		Active:  req.Active,
	})
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toAddressResponse(addr))
}

// List godoc
// @Summary Адреса текущего пользователя
// @Tags addresses
// @Produce json
// @Success 200 {object} dto.AddressListResponse
// @Security BearerAuth
// @Router /api/v1/addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	addrs, err := h.svc.ListMine(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := dto.AddressListResponse{Addresses: make([]dto.AddressResponse, 0, len(addrs))}
	for i := range addrs {
		out.Addresses = append(out.Addresses, toAddressResponse(&addrs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Activate godoc
// @Summary Сделать адрес активным
// @Tags addresses
// @Produce json
// @Param id path string true "ID адреса"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Security BearerAuth
// @Router /api/v1/addresses/{id}/activate [put]
func (h *AddressHandler) Activate(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Activate(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete godoc
// @Summary Удаление адреса
// @Tags addresses
// @Produce json
// @Param id path string true "ID адреса"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /api/v1/addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func toAddressResponse(a *models.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:       a.ID.String(),
		Country:  a.Country,
		City:     a.City,
		Street:   a.Street,
		Zipcode:  a.Zipcode,
		IsActive: a.IsActive,
	}
}
