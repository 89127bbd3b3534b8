package e

import "fmt"

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest        = fmt.Errorf("bad request")
	ErrExpectedMultipart       = fmt.Errorf("expected multipart/form-data")
	ErrProductNameRequired     = fmt.Errorf("product name is required")
	ErrInvalidPrice            = fmt.Errorf("price must be a non-negative number")
	ErrPricePrecision          = fmt.Errorf("price must have at most 2 decimal places")
	ErrCustomerNameRequired    = fmt.Errorf("customer name is required")
	ErrPhoneNumberRequired     = fmt.Errorf("phone number is required")
	ErrDeliveryAddressRequired = fmt.Errorf("delivery address is required")
	ErrInvalidQuantity         = fmt.Errorf("quantity must be a positive integer")
	ErrNoImages                = fmt.Errorf("no images provided")
	ErrTooManyImages           = fmt.Errorf("too many images")
	ErrFileTooLarge            = fmt.Errorf("file too large")
	ErrUnsupportedMediaType    = fmt.Errorf("unsupported media type")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenRequired      = fmt.Errorf("authorization token required")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
