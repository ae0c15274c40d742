package sale

import "aromapos/pkg/numerator"

const (
	// Sales invoices are fiscal documents, numbered strictly with no gaps.
	NumeratorStrategy = numerator.StrategyStrict

	InvoicePrefix = "SA"
	ReturnPrefix  = "RT"
)
