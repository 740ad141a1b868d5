package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	p := Product{Quantity: 10, ReorderPoint: 10}
	assert.True(t, p.IsLowStock(), "at the reorder point counts as low")

	p.Quantity = 11
	assert.False(t, p.IsLowStock())

	p.Quantity = 0
	assert.True(t, p.IsLowStock())
}

func TestIsOutflow(t *testing.T) {
	assert.True(t, (&StockMovement{QuantityChange: -5}).IsOutflow())
	assert.False(t, (&StockMovement{QuantityChange: 5}).IsOutflow())
}
