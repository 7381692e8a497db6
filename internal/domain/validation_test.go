package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadValidation(t *testing.T) {
	v := NewValidation()

	valid := &NewProductPayload{
		Name:          "Latte",
		UnitPrice:     2.45,
		InStockCount:  100,
		LowStockCount: 10,
		CategoryID:    1000,
	}
	assert.Empty(t, v.Validate(valid))
}

func TestPayloadValidationRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name    string
		payload NewProductPayload
		field   string
	}{
		{
			"Missing name",
			NewProductPayload{UnitPrice: 1, InStockCount: 1, CategoryID: 1000},
			"Name",
		},
		{
			"Negative price",
			NewProductPayload{Name: "x", UnitPrice: -1, InStockCount: 1, CategoryID: 1000},
			"UnitPrice",
		},
		{
			"Price over limit",
			NewProductPayload{Name: "x", UnitPrice: 1000000, InStockCount: 1, CategoryID: 1000},
			"UnitPrice",
		},
		{
			"Low stock above in stock",
			NewProductPayload{Name: "x", UnitPrice: 1, InStockCount: 10, LowStockCount: 11, CategoryID: 1000},
			"LowStockCount",
		},
		{
			"Category below range",
			NewProductPayload{Name: "x", UnitPrice: 1, InStockCount: 1, CategoryID: 999},
			"CategoryID",
		},
		{
			"Category above range",
			NewProductPayload{Name: "x", UnitPrice: 1, InStockCount: 1, CategoryID: 10000},
			"CategoryID",
		},
	}

	v := NewValidation()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.Validate(&tc.payload)
			assert.NotEmpty(t, errs)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.NotEmpty(t, errs.Error())
		})
	}
}
