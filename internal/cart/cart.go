// Package cart содержит сессионную корзину как явный value object:
// состояние живёт в сессии, сериализация — только на границе.
package cart

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

// Line — позиция корзины. UnitPriceCents — снимок эффективной цены на момент
// первого добавления; последующие изменения каталога его не трогают.
type Line struct {
	Quantity       uint32 `json:"quantity"`
	UnitPriceCents int64  `json:"price_cents"`
}

type Cart struct {
	lines map[uuid.UUID]Line
}

func New() *Cart {
	return &Cart{lines: make(map[uuid.UUID]Line)}
}

// Add добавляет qty единиц товара. Если позиция уже есть, количество
// суммируется, а снимок цены сохраняется прежним.
func (c *Cart) Add(productID uuid.UUID, qty uint32, unitPriceCents int64) {
	if qty == 0 {
		return
	}
	if line, ok := c.lines[productID]; ok {
		line.Quantity += qty
		c.lines[productID] = line
		return
	}
	c.lines[productID] = Line{Quantity: qty, UnitPriceCents: unitPriceCents}
}

// SetQuantity выставляет количество; qty < 1 означает удаление позиции.
// Снимок цены обновляется только для новой позиции.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int, unitPriceCents int64) {
	if qty < 1 {
		delete(c.lines, productID)
		return
	}
	if line, ok := c.lines[productID]; ok {
		line.Quantity = uint32(qty)
		c.lines[productID] = line
		return
	}
	c.lines[productID] = Line{Quantity: uint32(qty), UnitPriceCents: unitPriceCents}
}

// Remove убирает позицию; отсутствующий товар — no-op.
func (c *Cart) Remove(productID uuid.UUID) {
	delete(c.lines, productID)
}

func (c *Cart) Get(productID uuid.UUID) (Line, bool) {
	line, ok := c.lines[productID]
	return line, ok
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Count — суммарное количество единиц по всем позициям.
func (c *Cart) Count() uint32 {
	var n uint32
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// TotalCents — сумма снимков цен, помноженных на количества.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.UnitPriceCents * int64(line.Quantity)
	}
	return total
}

// ProductIDs возвращает идентификаторы позиций по возрастанию — порядок
// обхода корзины при финализации детерминирован.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.lines))
	for id := range c.lines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	m := make(map[string]Line, len(c.lines))
	for id, line := range c.lines {
		m[id.String()] = line
	}
	return json.Marshal(m)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var m map[string]Line
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	c.lines = make(map[uuid.UUID]Line, len(m))
	for key, line := range m {
		id, err := uuid.Parse(key)
		if err != nil {
			return err
		}
		c.lines[id] = line
	}
	return nil
}
