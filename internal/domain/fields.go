package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field identifiers used by the draft, the error map and the UI.
const (
	FieldName          = "name"
	FieldUnitPrice     = "unitPrice"
	FieldInStockCount  = "inStockCount"
	FieldLowStockCount = "lowStockCount"
	FieldCategoryID    = "categoryID"
)

// FieldKind selects the input widget and coercion for a field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindDecimal
	KindInteger
)

// Bounds for the numeric rules.
const (
	MaxUnitPrice  = 999999.99
	MaxStockCount = math.MaxInt32
	MinCategoryID = 1000
	MaxCategoryID = 9999
)

// FieldDescriptor is the static metadata plus validation rule for one input.
// Validate is pure: it returns a human-readable message, or "" when the
// value is acceptable. Cross-field rules read the rest of the draft.
type FieldDescriptor struct {
	ID          string
	Label       string
	Placeholder string
	Kind        FieldKind
	Validate    func(value string, draft Draft) string
}

// Fields is the ordered rule set backing the add-product form.
var Fields = []FieldDescriptor{
	{
		ID:          FieldName,
		Label:       "Name",
		Placeholder: "Product name",
		Kind:        KindText,
		Validate:    validateName,
	},
	{
		ID:          FieldUnitPrice,
		Label:       "Unit price",
		Placeholder: "0.00",
		Kind:        KindDecimal,
		Validate:    validateUnitPrice,
	},
	{
		ID:          FieldInStockCount,
		Label:       "In stock",
		Placeholder: "0",
		Kind:        KindInteger,
		Validate:    validateInStockCount,
	},
	{
		ID:          FieldLowStockCount,
		Label:       "Low-stock threshold",
		Placeholder: "0",
		Kind:        KindInteger,
		Validate:    validateLowStockCount,
	},
	{
		ID:          FieldCategoryID,
		Label:       "Category ID",
		Placeholder: "1000-9999",
		Kind:        KindInteger,
		Validate:    validateCategoryID,
	},
}

// FieldByID returns the descriptor for the given field identifier.
func FieldByID(id string) (FieldDescriptor, bool) {
	for _, f := range Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// ValidateDraft runs every field rule and returns the aggregate error map.
// An empty map means the draft is ready to submit.
func ValidateDraft(d Draft) map[string]string {
	errs := make(map[string]string)
	for _, f := range Fields {
		if msg := f.Validate(d[f.ID], d); msg != "" {
			errs[f.ID] = msg
		}
	}
	return errs
}

// ToPayload coerces a validated draft into the wire payload. Callers must
// run ValidateDraft first; a parse failure here means they did not.
func (d Draft) ToPayload() (*NewProductPayload, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(d[FieldUnitPrice]), 64)
	if err != nil {
		return nil, fmt.Errorf("coercing %s: %w", FieldUnitPrice, err)
	}

	inStock, err := strconv.ParseInt(strings.TrimSpace(d[FieldInStockCount]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("coercing %s: %w", FieldInStockCount, err)
	}

	lowStock, err := strconv.ParseInt(strings.TrimSpace(d[FieldLowStockCount]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("coercing %s: %w", FieldLowStockCount, err)
	}

	category, err := strconv.ParseInt(strings.TrimSpace(d[FieldCategoryID]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("coercing %s: %w", FieldCategoryID, err)
	}

	return &NewProductPayload{
		Name:          strings.TrimSpace(d[FieldName]),
		UnitPrice:     price,
		InStockCount:  inStock,
		LowStockCount: lowStock,
		CategoryID:    category,
	}, nil
}

func validateName(value string, _ Draft) string {
	if strings.TrimSpace(value) == "" {
		return "name is required"
	}
	return ""
}

func validateUnitPrice(value string, _ Draft) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "unit price is required"
	}
	price, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return "unit price must be a number"
	}
	if price < 0 {
		return "unit price cannot be negative"
	}
	if price > MaxUnitPrice {
		return fmt.Sprintf("unit price cannot exceed %.2f", float64(MaxUnitPrice))
	}
	return ""
}

func validateInStockCount(value string, _ Draft) string {
	return validateCount("in-stock count", value)
}

func validateLowStockCount(value string, draft Draft) string {
	if msg := validateCount("low-stock threshold", value); msg != "" {
		return msg
	}

	// Cross-field rule: only meaningful once the in-stock count itself
	// parses as a valid count.
	if validateCount("in-stock count", draft[FieldInStockCount]) != "" {
		return ""
	}

	low, _ := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	inStock, _ := strconv.ParseInt(strings.TrimSpace(draft[FieldInStockCount]), 10, 64)
	if low > inStock {
		return "low-stock threshold cannot exceed the in-stock count"
	}
	return ""
}

func validateCategoryID(value string, _ Draft) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "category ID is required"
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return "category ID must be a whole number"
	}
	if id < MinCategoryID || id > MaxCategoryID {
		return fmt.Sprintf("category ID must be between %d and %d", MinCategoryID, MaxCategoryID)
	}
	return ""
}

func validateCount(label, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return label + " is required"
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return label + " must be a whole number"
	}
	if n < 0 {
		return label + " cannot be negative"
	}
	if n > MaxStockCount {
		return fmt.Sprintf("%s cannot exceed %d", label, int64(MaxStockCount))
	}
	return ""
}
