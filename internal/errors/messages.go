package errors

import "fmt"

// User-facing message construction. Operations are named by what the user
// attempted so notifications read "Failed to add item to cart. Network
// error...".

// Operation identifies a user-visible action for message prefixing.
type Operation string

const (
	OpLogin          Operation = "login"
	OpRegister       Operation = "register"
	OpLogout         Operation = "logout"
	OpAddToCart      Operation = "add-to-cart"
	OpRemoveFromCart Operation = "remove-from-cart"
	OpUpdateCart     Operation = "update-cart"
	OpPlaceOrder     Operation = "place-order"
	OpFetchProducts  Operation = "fetch-products"
	OpFetchOrders    Operation = "fetch-orders"
	OpFetchCart      Operation = "fetch-cart"
	OpUpdateProfile  Operation = "update-profile"
)

var operationPrefixes = map[Operation]string{
	OpLogin:          "Login failed. ",
	OpRegister:       "Registration failed. ",
	OpLogout:         "Logout failed. ",
	OpAddToCart:      "Failed to add item to cart. ",
	OpRemoveFromCart: "Failed to remove item from cart. ",
	OpUpdateCart:     "Failed to update cart. ",
	OpPlaceOrder:     "Failed to place order. ",
	OpFetchProducts:  "Failed to load products. ",
	OpFetchOrders:    "Failed to load orders. ",
	OpFetchCart:      "Failed to load cart. ",
	OpUpdateProfile:  "Failed to update profile. ",
}

// UserMessage converts an error from the taxonomy into a user-friendly
// message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *HTTPError
	if As(err, &httpErr) {
		return httpStatusMessage(httpErr.Status)
	}

	var netErr *NetworkError
	if As(err, &netErr) {
		return "Network error. Please check your internet connection and try again."
	}

	var parseErr *ParsingError
	if As(err, &parseErr) {
		return "Error processing server response. Please try again."
	}

	var timeoutErr *TimeoutError
	if As(err, &timeoutErr) {
		return "Request timeout. Please try again."
	}

	var validationErr *ValidationError
	if As(err, &validationErr) {
		return validationErr.Message
	}

	return "An unexpected error occurred. Please try again."
}

// OperationMessage prefixes the user message with the failed operation.
func OperationMessage(op Operation, err error) string {
	return operationPrefixes[op] + UserMessage(err)
}

func httpStatusMessage(status int) string {
	switch status {
	case 400:
		return "Invalid request. Please check your information and try again."
	case 401:
		return "You are not authorized. Please log in and try again."
	case 403:
		return "Access denied. You don't have permission to perform this action."
	case 404:
		return "The requested resource was not found."
	case 409:
		return "This resource already exists or conflicts with existing data."
	case 422:
		return "The data you provided is invalid. Please check and try again."
	case 429:
		return "Too many requests. Please wait a moment and try again."
	case 500:
		return "Server error. Please try again later."
	case 502, 503:
		return "Service temporarily unavailable. Please try again later."
	case 504:
		return "Request timeout. Please check your connection and try again."
	default:
		return fmt.Sprintf("An error occurred (%d). Please try again.", status)
	}
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return As(err, &netErr)
}

// IsAuthError reports whether err is a 401/403 from the server.
func IsAuthError(err error) bool {
	var httpErr *HTTPError
	return As(err, &httpErr) && httpErr.IsAuthFailure()
}

// IsValidationError reports whether err is a client-side validation failure.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return As(err, &validationErr)
}
