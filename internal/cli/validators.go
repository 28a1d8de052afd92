package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// labelCategories maps the CLI spelling of a label category to its
// human noun.
var labelCategories = map[string]string{
	"credit-type":      "credit type",
	"expense-category": "expense category",
	"cash-mode":        "cash mode",
}

// ValidateLabelCategory checks a label-category argument.
func ValidateLabelCategory(category string) error {
	if _, ok := labelCategories[strings.ToLower(category)]; !ok {
		return fmt.Errorf("invalid category: %s (must be: credit-type, expense-category, or cash-mode)", category)
	}
	return nil
}

// LabelCategoryNoun returns the human noun for a category argument.
func LabelCategoryNoun(category string) string {
	return labelCategories[strings.ToLower(category)]
}

// ParsePrice parses and validates a fuel price argument.
func ParsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price: %s", s)
	}
	if price <= 0 {
		return 0, fmt.Errorf("price must be positive, got %s", s)
	}
	return price, nil
}

// ValidateLabel checks a label argument for the label-set sections.
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if len(label) > 50 {
		return fmt.Errorf("label cannot exceed 50 characters")
	}
	return nil
}
