package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/pricing"
)

func TestNewProduct_Defaults(t *testing.T) {
	p := NewProduct("P001", "Rose Attar", types.MustMoney("450"))

	assert.True(t, p.Active)
	assert.Equal(t, pricing.TaxInclusive, p.TaxMode)
	assert.True(t, p.DiscountPercent.IsZero())
}

func TestGenerateBarcode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		prodName string
		want     string
	}{
		{"plain name", "P001", "Rose Attar", "COMP-P001-ROSEA"},
		{"short name", "P002", "Oud", "COMP-P002-OUD"},
		{"skips punctuation", "P003", "L'Eau 50ml", "COMP-P003-LEAU5"},
		{"empty name", "P004", "", "COMP-P004-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProduct(tt.code, tt.prodName, types.MustMoney("100"))
			assert.Equal(t, tt.want, p.GenerateBarcode())
		})
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		p := NewProduct("P001", "Rose Attar", types.MustMoney("450"))
		assert.NoError(t, p.Validate(ctx))
	})

	t.Run("negative mrp", func(t *testing.T) {
		p := NewProduct("P001", "Rose Attar", types.MustMoney("-1"))
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("discount above 100", func(t *testing.T) {
		p := NewProduct("P001", "Rose Attar", types.MustMoney("450"))
		p.DiscountPercent = decimal.NewFromInt(101)
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("same tax in both slots", func(t *testing.T) {
		p := NewProduct("P001", "Rose Attar", types.MustMoney("450"))
		taxID := id.New()
		p.Tax1ID = &taxID
		p.Tax2ID = &taxID
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("distinct tax slots", func(t *testing.T) {
		p := NewProduct("P001", "Rose Attar", types.MustMoney("450"))
		tax1, tax2 := id.New(), id.New()
		p.Tax1ID = &tax1
		p.Tax2ID = &tax2
		assert.NoError(t, p.Validate(ctx))
	})

	t.Run("negative opening stock", func(t *testing.T) {
		p := NewProduct("P001", "Rose Attar", types.MustMoney("450"))
		p.OpeningStock = types.NewQuantityFromFloat64(-1)
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("bad tax mode", func(t *testing.T) {
		p := NewProduct("P001", "Rose Attar", types.MustMoney("450"))
		p.TaxMode = pricing.TaxMode("HALF")
		assert.Error(t, p.Validate(ctx))
	})
}
