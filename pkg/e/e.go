package e

import "fmt"

var (
	// Внутренние ошибки хранилища снапшотов
	ErrSnapshotNotFound      = fmt.Errorf("snapshot not found")
	ErrUnknownStorageBackend = fmt.Errorf("unknown storage backend")
	ErrIncorrectEnvVariable  = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPaymentMethod = fmt.Errorf("invalid payment method")
	ErrInvalidDateRange     = fmt.Errorf("invalid date range")

	// 401 Unauthorized
	ErrAuthenticationFailed = fmt.Errorf("authentication failed")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 409 Conflict
	ErrInvalidCheckout   = fmt.Errorf("invalid checkout")
	ErrIllegalTransition = fmt.Errorf("illegal order status transition")

	// 503 Service Unavailable
	ErrExportDisabled = fmt.Errorf("export storage is not configured")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
