package purchase

import "aromapos/pkg/numerator"

const (
	// Purchase entries are primary accounting documents, numbered strictly.
	NumeratorStrategy = numerator.StrategyStrict

	EntryPrefix  = "PE"
	ReturnPrefix = "PR"
)
