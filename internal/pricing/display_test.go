package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTaxRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    *TaxRate
		display string
		want    string
	}{
		{"structured preferred", &TaxRate{Name: "GST", Rate: money("18")}, "GST (5%)", "18"},
		{"string fallback", nil, "GST (12%)", "12"},
		{"fractional rate", nil, "VAT (2.5%)", "2.5"},
		{"unparseable string", nil, "no percent here", "0"},
		{"nothing at all", nil, "", "0"},
		{"negative structured clamped", &TaxRate{Name: "Bad", Rate: money("-3")}, "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTaxRate(tt.rate, tt.display)
			assert.True(t, got.Equal(money(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestFormatTaxDisplay(t *testing.T) {
	assert.Equal(t, "GST (18%)", FormatTaxDisplay(&TaxRate{Name: "GST", Rate: money("18")}, ""))
	assert.Equal(t, "VAT (2.5%)", FormatTaxDisplay(&TaxRate{Name: "VAT", Rate: money("2.5")}, ""))
	assert.Equal(t, "GST (12%)", FormatTaxDisplay(nil, "GST (12%)"))
	assert.Equal(t, NoTaxDisplay, FormatTaxDisplay(nil, ""))
}
