package mix

import (
	"strconv"
	"strings"
)

// DeriveIdentifier names one line item for mix membership. It is a pure
// function of the row fields and settings. An empty result means the row has
// no usable product name and must be dropped before aggregation.
func DeriveIdentifier(title, variant, sku string, quantity int, s Settings) string {
	p := cleanToken(title)
	v := cleanToken(variant)
	sk := cleanToken(sku)

	var id string
	switch s.IDMode {
	case IDModeSKU:
		id = sk
		if id == "" {
			id = p
		}
	case IDModeProductVariant:
		if v != "" {
			id = p + " (" + v + ")"
		} else {
			id = p
		}
	default:
		id = p
	}
	if id == "" {
		return ""
	}
	if s.DifferentiateQuantity && quantity > 1 {
		id = strconv.Itoa(quantity) + "x " + id
	}
	return id
}

func cleanToken(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, missingToken) {
		return ""
	}
	return s
}
