package mix

import (
	"fmt"
	"strings"
)

// IDMode selects how a line item is named inside a product mix.
type IDMode string

const (
	// IDModeSKU uses the SKU, falling back to the product title.
	IDModeSKU IDMode = "sku"
	// IDModeProductVariant uses "Product Title (Variant Title)".
	IDModeProductVariant IDMode = "product-variant"
	// IDModeProduct uses the bare product title.
	IDModeProduct IDMode = "product"
)

// ParseIDMode accepts the mode spellings used across flags, config files and
// the original report UI.
func ParseIDMode(s string) (IDMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sku":
		return IDModeSKU, nil
	case "product-variant", "product+variant", "product + variant", "variant":
		return IDModeProductVariant, nil
	case "product", "product-name", "product name", "title":
		return IDModeProduct, nil
	}
	return "", fmt.Errorf("invalid identifier mode: %q (use sku|product-variant|product)", s)
}

// Settings carries every user-tunable knob of the pipeline. It is threaded
// explicitly into each stage; there is no ambient state.
type Settings struct {
	IDMode IDMode
	// DifferentiateQuantity prefixes identifiers with "<n>x " when a line
	// item's quantity exceeds one.
	DifferentiateQuantity bool
	// IgnoreSKUs drops line items whose SKU matches exactly,
	// case-insensitively. Entries are stored upper-cased.
	IgnoreSKUs map[string]struct{}
	// IgnoreTitles drops line items whose product title contains any of
	// these lower-cased substrings.
	IgnoreTitles []string
	// IgnoreVariantCombos drops line items whose composite
	// "Product Title (Variant Title)" contains any of these lower-cased
	// substrings.
	IgnoreVariantCombos []string
	// PaymentStatuses is the allow-set for the financial-status filter.
	PaymentStatuses []string
}

// DefaultSettings matches the defaults of the original report tool: SKU
// identifiers, quantities collapsed, only paid and partially paid lines.
func DefaultSettings() Settings {
	return Settings{
		IDMode:          IDModeSKU,
		PaymentStatuses: []string{"paid", "partially_paid"},
	}
}

// ParseIgnoreList splits newline-delimited rule input into entries,
// discarding blank lines and '#' comments.
func ParseIgnoreList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// SKUSet upper-cases entries into the exact-match ignore set.
func SKUSet(entries []string) map[string]struct{} {
	if len(entries) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[strings.ToUpper(e)] = struct{}{}
	}
	return set
}

// LowerAll lower-cases entries for the substring ignore lists.
func LowerAll(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = strings.ToLower(e)
	}
	return out
}
