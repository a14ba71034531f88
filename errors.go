package diffcolors

import (
	"fmt"
	"strings"
)

// UnknownColorNameError reports a color name that is not part of the brand
// palette. Valid holds the full set of accepted names in sorted order.
type UnknownColorNameError struct {
	Name  string
	Valid []string
}

func (e *UnknownColorNameError) Error() string {
	return fmt.Sprintf("unknown color name %q, valid names are: %s",
		e.Name, strings.Join(e.Valid, ", "))
}

// InvalidVariantError reports a gradient variant outside the accepted set.
type InvalidVariantError struct {
	Variant Variant
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid gradient variant %q, must be one of %q, %q or %q",
		string(e.Variant), VariantLight, VariantDark, VariantFull)
}
