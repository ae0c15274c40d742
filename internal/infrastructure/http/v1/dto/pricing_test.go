package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aromapos/internal/pricing"
)

func TestPricePreviewRequest_ToLineInput_TaxDisplayFallback(t *testing.T) {
	req := PricePreviewRequest{
		BasePrice:   decimal.NewFromInt(118),
		Tax1Display: "CGST (9%)",
		Tax2Display: "SGST (9%)",
	}

	in := req.ToLineInput()

	require.NotNil(t, in.Tax1)
	assert.Equal(t, "CGST", in.Tax1.Name)
	assert.True(t, in.Tax1.Rate.Equal(decimal.NewFromInt(9)), "tax1 rate = %s", in.Tax1.Rate)

	require.NotNil(t, in.Tax2)
	assert.Equal(t, "SGST", in.Tax2.Name)
	assert.True(t, in.Tax2.Rate.Equal(decimal.NewFromInt(9)), "tax2 rate = %s", in.Tax2.Rate)
}

func TestPricePreviewRequest_ToLineInput_StructuredTaxWins(t *testing.T) {
	req := PricePreviewRequest{
		BasePrice:   decimal.NewFromInt(100),
		Tax1:        &PricePreviewTax{Name: "IGST", Rate: decimal.NewFromInt(18)},
		Tax1Display: "CGST (9%)",
	}

	in := req.ToLineInput()

	require.NotNil(t, in.Tax1)
	assert.Equal(t, "IGST", in.Tax1.Name)
	assert.True(t, in.Tax1.Rate.Equal(decimal.NewFromInt(18)))
}

func TestPricePreviewRequest_ToLineInput_UnparseableDisplay(t *testing.T) {
	req := PricePreviewRequest{
		BasePrice:   decimal.NewFromInt(100),
		Tax1Display: pricing.NoTaxDisplay,
		Tax2Display: "handwritten note",
	}

	in := req.ToLineInput()

	assert.Nil(t, in.Tax1)
	assert.Nil(t, in.Tax2)
}

func TestPricePreviewRequest_ToLineInput_Defaults(t *testing.T) {
	req := PricePreviewRequest{BasePrice: decimal.NewFromInt(50)}

	in := req.ToLineInput()

	assert.Equal(t, pricing.TaxInclusive, in.TaxMode)
	assert.Equal(t, int64(1), in.Quantity)
	assert.Nil(t, in.Tax1)
	assert.Nil(t, in.Tax2)
}
