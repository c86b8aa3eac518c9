package orders

import "fmt"

// InvalidInputError reports a malformed request, rejected before any store
// access.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

func invalidInput(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// ProductNotFoundError reports a line item whose product id has no matching
// row. Sales and prescriptions word the message differently; both forms are
// part of the wire contract.
type ProductNotFoundError struct {
	ProductID int64
	wording   string
}

func saleProductNotFound(id int64) *ProductNotFoundError {
	return &ProductNotFoundError{ProductID: id, wording: "not found"}
}

func prescriptionProductNotFound(id int64) *ProductNotFoundError {
	return &ProductNotFoundError{ProductID: id, wording: "does not exist"}
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with id %d %s", e.ProductID, e.wording)
}

// InsufficientStockError reports a line requesting more units than the
// product currently has.
type InsufficientStockError struct {
	ProductName string
	Available   int64
	Required    int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product %s. Available: %d, Required: %d",
		e.ProductName, e.Available, e.Required)
}
