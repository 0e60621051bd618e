package code

// Default message for each error code.
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",

	// Admin account error codes
	ErrAdminNotFound:     "Admin not found!",
	ErrEmailExists:       "email exist deja !",
	ErrPasswordIncorrect: "Password incorrect!",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// HTTP status for each error code.
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Admin account error codes
	ErrAdminNotFound:     StatusNotFound,
	ErrEmailExists:       StatusNotFound,
	ErrPasswordIncorrect: StatusNotFound,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the default message for an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
