package service

import "shop-service/internal/models"

// EffectiveUnitPriceCents — цена за единицу с учётом активной скидки.
// Арифметика целочисленная, в центах: (price * (100 - p)) / 100, остаток
// отбрасывается в пользу покупателя.
func EffectiveUnitPriceCents(p *models.Product) int64 {
	if p.Discount == nil || !p.Discount.IsActive {
		return p.PriceCents
	}
	pct := p.Discount.Percentage
	if pct <= 0 {
		return p.PriceCents
	}
	if pct >= 100 {
		return 0
	}
	return p.PriceCents * (100 - pct) / 100
}
