package erp

import (
	"regexp"
	"strings"

	"github.com/mercalabs/shelfscan/internal/openfoodfacts"
)

// Normalized holds the ERP-shaped fields derived from one catalog match.
type Normalized struct {
	Category string
	Supplier string
	Detail   string
}

// categoryRule maps one ERP category to the keywords that select it.
type categoryRule struct {
	category string
	keywords []string
}

// categoryRules is tested in order and the first rule with any keyword
// substring match wins, so a taxonomy string matching both a beverage and
// a food keyword resolves to bebestible. Membership and order are data,
// not branches, so both can be tested independently.
var categoryRules = []categoryRule{
	{"bebestible", []string{
		"bebida", "beverage", "agua", "jugo", "zumo", "refresco", "gaseosa",
		"soda", "cerveza", "vino", "licor", "cafe", "café",
	}},
	{"helado", []string{
		"helado", "ice cream", "ice-cream", "gelato", "sorbete",
	}},
	{"fiambre", []string{
		"fiambre", "jamón", "jamon", "embutido", "salchicha", "chorizo",
		"tocino", "bacon", "paté", "pate",
	}},
	{"lacteo", []string{
		"lacteo", "lácteo", "dairy", "leche", "milk", "yogur", "yogurt",
		"queso", "cheese", "mantequilla", "crema", "nata",
	}},
	{"comida", []string{
		"comida", "food", "snack", "pasta", "arroz", "cereal", "galleta",
		"biscuit", "pan", "bread", "dulce", "chocolate", "carne", "pescado",
		"verdura", "vegetal", "fruta", "sopa", "salsa",
	}},
}

// defaultCategory is used when a non-empty taxonomy matches no rule.
const defaultCategory = "comida"

// quantityPatterns extract a <number><unit> detail from a product name.
// Full Spanish unit names come before their abbreviations so the longest
// form is captured.
var quantityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(kilogramos|gramos|mililitros|litros|kg|ml|g|l)`),
	regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(unidades|pieces|pcs|u)`),
}

// CategoryFromTaxonomy maps a free-text Open Food Facts category string
// to an ERP category. Empty input yields an empty string so the caller
// decides whether the default applies.
func CategoryFromTaxonomy(categories string) string {
	if categories == "" {
		return ""
	}

	lower := strings.ToLower(categories)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}

	return defaultCategory
}

// SupplierFromBrands extracts the supplier from a comma-joined brands
// string. The first non-empty segment wins; empty input yields "".
func SupplierFromBrands(brands string) string {
	for _, segment := range strings.Split(brands, ",") {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// DetailFromMatch resolves the quantity detail for a match: the explicit
// quantity field wins, then the serving size, then the first
// <number><unit> pattern found in the display name.
func DetailFromMatch(match *openfoodfacts.Product) string {
	if match.Quantity != "" {
		return match.Quantity
	}
	if match.ServingSize != "" {
		return match.ServingSize
	}

	name := strings.ToLower(match.ProductName)
	for _, pattern := range quantityPatterns {
		if m := pattern.FindStringSubmatch(name); m != nil {
			return m[1] + m[2]
		}
	}

	return ""
}

// NormalizeMatch reshapes a raw catalog match into ERP fields.
func NormalizeMatch(match *openfoodfacts.Product) Normalized {
	return Normalized{
		Category: CategoryFromTaxonomy(match.Categories),
		Supplier: SupplierFromBrands(match.Brands),
		Detail:   DetailFromMatch(match),
	}
}
