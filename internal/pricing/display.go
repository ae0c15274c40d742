package pricing

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"aromapos/internal/core/types"
)

// NoTaxDisplay is shown when a line carries no tax reference at all.
const NoTaxDisplay = "No Tax"

// Some API payloads carry a structured tax object, others only a pre-rendered
// "Name (NN%)" string. These helpers normalize both shapes so the engine only
// ever sees a TaxRate.

var taxDisplayRe = regexp.MustCompile(`\(([0-9]+(?:\.[0-9]+)?)%\)`)

// ExtractTaxRate resolves a numeric rate from a structured tax reference or,
// when absent, from a display string of the form "Name (NN%)". Returns zero
// when neither is parseable.
func ExtractTaxRate(rate *TaxRate, display string) types.Money {
	if rate != nil {
		return clampNonNegative(rate.Rate)
	}
	m := taxDisplayRe.FindStringSubmatch(display)
	if m == nil {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero
	}
	return v
}

// FormatTaxDisplay renders "Name (NN%)" from a structured reference, passes a
// pre-rendered string through unchanged, and defaults to NoTaxDisplay when
// neither is available.
func FormatTaxDisplay(rate *TaxRate, display string) string {
	if rate != nil {
		return fmt.Sprintf("%s (%s%%)", rate.Name, rate.Rate.String())
	}
	if display != "" {
		return display
	}
	return NoTaxDisplay
}
