package domain

// ProductRecord is a product as returned by the product API. Records are
// owned by the API; this client only displays them or submits new ones.
type ProductRecord struct {
	// The ID of the product
	ID int64 `json:"id"`

	// The display name of the product
	Name string `json:"pName"`

	// The unit price of the product
	UnitPrice float64 `json:"unitPrice"`

	// Units currently in stock
	InStockCount int64 `json:"inStockCount"`

	// Threshold below which the product counts as low on stock
	LowStockCount int64 `json:"lowStockCount"`

	// The category the product belongs to
	CategoryID int64 `json:"categoryID"`
}

// NewProductPayload is the coerced body for POST /api/products/add.
// The validate tags mirror the field rule set and act as the final
// aggregate guard before the payload crosses the wire.
type NewProductPayload struct {
	Name          string  `json:"pName" validate:"required"`
	UnitPrice     float64 `json:"unitPrice" validate:"gte=0,lte=999999.99"`
	InStockCount  int64   `json:"inStockCount" validate:"gte=0,lte=2147483647"`
	LowStockCount int64   `json:"lowStockCount" validate:"gte=0,lte=2147483647,ltefield=InStockCount"`
	CategoryID    int64   `json:"categoryID" validate:"gte=1000,lte=9999"`
}

// Draft holds the in-progress, unsubmitted string values of the add-product
// form, keyed by field identifier.
type Draft map[string]string

// NewDraft returns a draft with every known field present and empty.
func NewDraft() Draft {
	d := make(Draft, len(Fields))
	for _, f := range Fields {
		d[f.ID] = ""
	}
	return d
}

// Reset clears every field back to its initial empty value.
func (d Draft) Reset() {
	for id := range d {
		d[id] = ""
	}
}
