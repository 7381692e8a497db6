package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		FieldName:          "Latte",
		FieldUnitPrice:     "2.45",
		FieldInStockCount:  "100",
		FieldLowStockCount: "10",
		FieldCategoryID:    "1000",
	}
}

func TestEveryFieldRequiresAValue(t *testing.T) {
	d := NewDraft()

	for _, f := range Fields {
		t.Run(f.ID, func(t *testing.T) {
			assert.NotEmpty(t, f.Validate("", d))
		})
	}
}

func TestUnitPriceValidation(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"Negative", "-1", false},
		{"Zero", "0", true},
		{"Over limit", "1000000", false},
		{"At limit", "999999.99", true},
		{"Not a number", "abc", false},
		{"Decimal", "2.45", true},
	}

	f, ok := FieldByID(FieldUnitPrice)
	require.True(t, ok)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := f.Validate(tc.value, validDraft())
			if tc.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestStockCountValidation(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"Negative", "-1", false},
		{"Zero", "0", true},
		{"At int32 limit", "2147483647", true},
		{"Over int32 limit", "2147483648", false},
		{"Not a number", "ten", false},
	}

	f, ok := FieldByID(FieldInStockCount)
	require.True(t, ok)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := f.Validate(tc.value, validDraft())
			if tc.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestLowStockCrossFieldRule(t *testing.T) {
	f, ok := FieldByID(FieldLowStockCount)
	require.True(t, ok)

	d := validDraft()
	d[FieldInStockCount] = "10"

	assert.NotEmpty(t, f.Validate("11", d), "threshold above stock must fail")
	assert.Empty(t, f.Validate("10", d), "threshold equal to stock is fine")
	assert.Empty(t, f.Validate("9", d))

	// While the in-stock count itself is invalid, the cross-field rule
	// stays quiet so only one field reports the problem.
	d[FieldInStockCount] = "abc"
	assert.Empty(t, f.Validate("11", d))
}

func TestCategoryIDValidation(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"Below range", "999", false},
		{"Lower bound", "1000", true},
		{"Upper bound", "9999", true},
		{"Above range", "10000", false},
		{"Not a number", "home", false},
	}

	f, ok := FieldByID(FieldCategoryID)
	require.True(t, ok)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := f.Validate(tc.value, validDraft())
			if tc.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateDraft(t *testing.T) {
	assert.Empty(t, ValidateDraft(validDraft()))

	d := validDraft()
	d[FieldUnitPrice] = "-1"
	d[FieldCategoryID] = ""

	errs := ValidateDraft(d)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, FieldUnitPrice)
	assert.Contains(t, errs, FieldCategoryID)
}

func TestToPayloadCoercesNumericFields(t *testing.T) {
	d := validDraft()

	p, err := d.ToPayload()
	require.NoError(t, err)

	assert.Equal(t, "Latte", p.Name)
	assert.Equal(t, 2.45, p.UnitPrice)
	assert.Equal(t, int64(100), p.InStockCount)
	assert.Equal(t, int64(10), p.LowStockCount)
	assert.Equal(t, int64(1000), p.CategoryID)
}

func TestToPayloadFailsOnUnparsedDraft(t *testing.T) {
	d := validDraft()
	d[FieldUnitPrice] = "free"

	_, err := d.ToPayload()
	assert.Error(t, err)
}

func TestDraftReset(t *testing.T) {
	d := validDraft()
	d.Reset()

	for _, f := range Fields {
		assert.Empty(t, d[f.ID])
	}
}
