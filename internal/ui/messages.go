package ui

import "github.com/kahvecikaan/product-admin/internal/domain"

// productsLoadedMsg carries the result of a listing fetch.
type productsLoadedMsg struct {
	products []domain.ProductRecord
	err      error
}

// submitFinishedMsg signals that the in-flight submit resolved.
type submitFinishedMsg struct {
	err error
}

// noticeExpiredMsg clears the transient status notice identified by seq.
type noticeExpiredMsg struct {
	seq int
}
