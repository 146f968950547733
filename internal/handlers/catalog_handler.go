package handlers

import (
	"net/http"

	"shop-service/internal/dto"
	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc *service.CatalogService
	log *zap.Logger
}

func NewCatalogHandler(svc *service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

// CreateCategory godoc
// @Summary Создание категории
// @Tags catalog
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Категория"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 409 {object} dto.ConflictErrorResponse
// @Security BearerAuth
// @Router /api/v1/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	var parentID *uuid.UUID
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid parent_id", nil))
			return
		}
		parentID = &id
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), req.Name, parentID)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(cat))
}

// ListRootCategories godoc
// @Summary Корневые категории
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /api/v1/categories [get]
func (h *CatalogHandler) ListRootCategories(c *gin.Context) {
	cats, err := h.svc.ListRootCategories(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryList(cats))
}

// Descendants godoc
// @Summary Все подкатегории (рекурсивно)
// @Tags catalog
// @Produce json
// @Param id path string true "ID категории"
// @Param include_self query bool false "Включать саму категорию"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/categories/{id}/descendants [get]
func (h *CatalogHandler) Descendants(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	includeSelf := c.Query("include_self") == "true"
	cats, err := h.svc.Descendants(c.Request.Context(), id, includeSelf)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryList(cats))
}

// ListProductsByCategory godoc
// @Summary Товары категории и всех её подкатегорий
// @Tags catalog
// @Produce json
// @Param id path string true "ID категории"
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} dto.ProductListResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/categories/{id}/products [get]
func (h *CatalogHandler) ListProductsByCategory(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	limit, offset := paging(c)
	products, total, err := h.svc.ListProductsByCategory(c.Request.Context(), id, limit, offset)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductList(products, total))
}

// ListProducts godoc
// @Summary Список активных товаров
// @Tags catalog
// @Produce json
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} dto.ProductListResponse
// @Router /api/v1/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	limit, offset := paging(c)
	products, total, err := h.svc.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductList(products, total))
}

// GetProduct godoc
// @Summary Карточка товара
// @Tags catalog
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

// CreateProduct godoc
// @Summary Создание товара
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Товар"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Security BearerAuth
// @Router /api/v1/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid category_id", nil))
		return
	}
	p, err := h.svc.CreateProduct(c.Request.Context(), service.ProductInput{
		CategoryID: categoryID,
		Name:       req.Name,
		About:      req.About,
		PriceCents: req.PriceCents,
		Quantity:   req.Quantity,
		IsActive:   req.IsActive,
	})
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

// DeleteProduct godoc
// @Summary Удаление товара (логическое)
// @Tags catalog
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Security BearerAuth
// @Router /api/v1/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// SetDiscount godoc
// @Summary Установка скидки на товар
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "ID товара"
// @Param discount body dto.SetDiscountRequest true "Скидка"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Security BearerAuth
// @Router /api/v1/products/{id}/discount [put]
func (h *CatalogHandler) SetDiscount(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, h.log, err)
		return
	}
	if err := h.svc.SetDiscount(c.Request.Context(), id, req.Percentage); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RemoveDiscount godoc
// @Summary Снятие скидки с товара
// @Tags catalog
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Security BearerAuth
// @Router /api/v1/products/{id}/discount [delete]
func (h *CatalogHandler) RemoveDiscount(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	removed, err := h.svc.RemoveDiscount(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func toCategoryResponse(cat *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       cat.ID.String(),
		Name:     cat.Name,
		ParentID: strPtr(cat.ParentID),
	}
}

func toCategoryList(cats []models.Category) dto.CategoryListResponse {
	out := dto.CategoryListResponse{Categories: make([]dto.CategoryResponse, 0, len(cats))}
	for i := range cats {
		out.Categories = append(out.Categories, toCategoryResponse(&cats[i]))
	}
	return out
}

func toProductResponse(p *models.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:                  p.ID.String(),
		CategoryID:          p.CategoryID.String(),
		Name:                p.Name,
		About:               p.About,
		PriceCents:          p.PriceCents,
		EffectivePriceCents: service.EffectiveUnitPriceCents(p),
		Quantity:            p.Quantity,
		IsActive:            p.IsActive,
	}
	if p.Discount != nil && p.Discount.IsActive {
		pct := p.Discount.Percentage
		resp.DiscountPercent = &pct
	}
	return resp
}

func toProductList(products []models.Product, total int64) dto.ProductListResponse {
	out := dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(products)), Total: total}
	for i := range products {
		out.Products = append(out.Products, toProductResponse(&products[i]))
	}
	return out
}
