package decimal

import "github.com/zeebo/errs"

var (
	// Error is the error class for this package.
	Error = errs.Class("decimal")

	// FormatError is returned for malformed serialized or textual input.
	FormatError = errs.Class("format")

	// OverflowError is returned when a value does not fit in the target of
	// a narrowing conversion.
	OverflowError = errs.Class("overflow")

	// InvalidCastError is returned when a conversion target has no decimal
	// representation.
	InvalidCastError = errs.Class("invalid cast")

	// InvalidComparisonError is returned when comparing against a value of
	// an unsupported type.
	InvalidComparisonError = errs.Class("invalid comparison")
)
