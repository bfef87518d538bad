package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidUUID   ErrorCode = "VALIDATION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInUse         ErrorCode = "CATEGORY_003"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound      ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount ErrorCode = "EXPENSE_002"
	ExpenseInvalidRange  ErrorCode = "EXPENSE_003"
)

// Invoice error codes (INVOICE_*)
const (
	InvoiceNotFound          ErrorCode = "INVOICE_001"
	InvoiceNumberExists      ErrorCode = "INVOICE_002"
	InvoiceInvalidStatus     ErrorCode = "INVOICE_003"
	InvoiceInvalidTransition ErrorCode = "INVOICE_004"
	InvoiceInvalidAmount     ErrorCode = "INVOICE_005"
)

// Client error codes (CLIENT_*)
const (
	ClientNotFound       ErrorCode = "CLIENT_001"
	ClientInUse          ErrorCode = "CLIENT_002"
	ClientInvalidRate    ErrorCode = "CLIENT_003"
	WorkedHourNotFound   ErrorCode = "CLIENT_004"
	WorkedHourInvalid    ErrorCode = "CLIENT_005"
)

// Report and projection error codes (REPORT_*)
const (
	ReportInvalidPeriod     ErrorCode = "REPORT_001"
	ReportInvalidMonths     ErrorCode = "REPORT_002"
	ProjectionInvalidParams ErrorCode = "REPORT_003"
)

// Settings error codes (SETTINGS_*)
const (
	SettingsInvalidValue ErrorCode = "SETTINGS_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidUUID:   "Invalid identifier format",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInUse:         "Category is still referenced by expenses",

	// Expense errors
	ExpenseNotFound:      "Expense not found",
	ExpenseInvalidAmount: "Expense amount must not be negative",
	ExpenseInvalidRange:  "Start date must not be after end date",

	// Invoice errors
	InvoiceNotFound:          "Invoice not found",
	InvoiceNumberExists:      "An invoice with this number already exists",
	InvoiceInvalidStatus:     "Invalid invoice status",
	InvoiceInvalidTransition: "Invoice status transition not allowed",
	InvoiceInvalidAmount:     "Invalid invoice amount",

	// Client errors
	ClientNotFound:     "Client not found",
	ClientInUse:        "Client is still referenced by invoices or worked hours",
	ClientInvalidRate:  "Hourly rate must be positive",
	WorkedHourNotFound: "Worked hour entry not found",
	WorkedHourInvalid:  "Worked hours must be positive",

	// Report and projection errors
	ReportInvalidPeriod:     "Invalid report period",
	ReportInvalidMonths:     "Months count is out of allowed range",
	ProjectionInvalidParams: "Invalid tax projection parameters",

	// Settings errors
	SettingsInvalidValue: "Invalid settings value",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
