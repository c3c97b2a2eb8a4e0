package errs

import "errors"

// Domain-specific sentinel errors for the booking/checkout usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidPackage  = errors.New("invalid package")
	ErrInvalidBooking  = errors.New("invalid booking request")

	// Lifecycle errors
	ErrStatusRegression = errors.New("payment status regression")

	// Checkout errors
	ErrPaymentsNotConfigured   = errors.New("payment system not configured")
	ErrCheckoutSessionFailed   = errors.New("checkout session creation failed")
	ErrCapacityExceeded        = errors.New("capacity exceeded") // reserved, not enforced yet
	ErrSignatureInvalid        = errors.New("webhook signature invalid")
	ErrStoreUnavailable        = errors.New("record store unavailable")
	ErrDatabaseOperationFailed = errors.New("database operation failed")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotConfigured = errors.New("admin credentials not configured")
)
