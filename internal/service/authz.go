package service

import (
	"context"

	"shop-service/internal/models"
)

// Capability — явное перечисление возможностей вместо wildcard-кодов
// разрешений: связка роль → возможности зашита здесь и нигде больше.
type Capability string

const (
	CapManageCatalog   Capability = "manage_catalog"   // товары, категории
	CapManageDiscounts Capability = "manage_discounts" // скидки, купоны
	CapManageOrders    Capability = "manage_orders"
	CapManageUsers     Capability = "manage_users"
	CapManageAddresses Capability = "manage_addresses"
	CapViewReports     Capability = "view_reports"
)

var roleCapabilities = map[models.Role][]Capability{
	models.RoleProductManager: {CapManageCatalog, CapManageDiscounts},
	models.RoleSupervisor:     {CapViewReports},
	models.RoleOperator:       {CapManageUsers, CapManageOrders, CapManageAddresses},
	models.RoleAdmin: {
		CapManageCatalog, CapManageDiscounts, CapManageOrders,
		CapManageUsers, CapManageAddresses, CapViewReports,
	},
}

func HasCapability(role models.Role, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// RequireCapability — аутентификация плюс проверка возможности; возвращает
// ErrForbidden, если роль пользователя возможностью не обладает.
func RequireCapability(ctx context.Context, cap Capability) error {
	_, role, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	if !HasCapability(role, cap) {
		return ErrForbidden
	}
	return nil
}
