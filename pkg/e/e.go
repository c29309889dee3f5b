package e

import (
	"fmt"
	"strings"
)

var (
	// 400 Bad Request
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrCategoryRequired    = fmt.Errorf("category is required")
	ErrUnknownCategory     = fmt.Errorf("category does not exist")
	ErrCategoryNameEmpty   = fmt.Errorf("category name is required")
	ErrNoProductsSelected  = fmt.Errorf("select at least one product")
	ErrInvalidBackup       = fmt.Errorf("invalid backup file")
	ErrInvalidPayload      = fmt.Errorf("invalid request payload")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrOrderNotFound    = fmt.Errorf("purchase order not found")

	// 409 Conflict
	ErrCategoryExists       = fmt.Errorf("category already exists")
	ErrNegativeStock        = fmt.Errorf("stock cannot be negative")
	ErrNegativeMargin       = fmt.Errorf("selling price is below cost price")
	ErrOrderNotPending      = fmt.Errorf("purchase order is not pending")
	ErrOrderAlreadyReceived = fmt.Errorf("purchase order already received")

	ErrInternalServerError = fmt.Errorf("internal server error")
)

// ReferencedError blocks a category deletion that would orphan products.
// OtherCategories lists valid reassignment targets; empty means the category
// cannot be deleted until its products are removed.
type ReferencedError struct {
	Category        string
	Count           int
	OtherCategories []string
}

func (r *ReferencedError) Error() string {
	if len(r.OtherCategories) == 0 {
		return fmt.Sprintf("category %q is used by %d product(s) and no other category exists", r.Category, r.Count)
	}

	return fmt.Sprintf("category %q is used by %d product(s); reassign them to one of: %s",
		r.Category, r.Count, strings.Join(r.OtherCategories, ", "))
}

// Wrap annotates err with the call-site context.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
