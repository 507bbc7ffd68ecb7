package errors

import (
	"net/http"

	"tally/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Program-related errors
	ErrProgramNotFound = NewBaseError(
		http.StatusNotFound,
		"PROGRAM_NOT_FOUND",
		"找不到該集點活動",
		"",
	)

	ErrProgramUnavailable = NewBaseError(
		http.StatusConflict,
		"PROGRAM_UNAVAILABLE",
		"此集點活動目前未開放",
		"",
	)

	ErrProgramCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROGRAM_CREATION_FAILED",
		"建立集點活動失敗",
		"",
	)

	ErrProgramOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"PROGRAM_OWNERSHIP_VIOLATION",
		"您沒有權限管理此集點活動",
		"",
	)

	ErrInvalidRewardThreshold = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REWARD_THRESHOLD",
		"兌換門檻必須至少為 1 點",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"無效的活動狀態變更",
		"",
	)

	// Membership-related errors
	ErrMembershipNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBERSHIP_NOT_FOUND",
		"找不到該會員集點卡",
		"",
	)

	ErrMembershipCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEMBERSHIP_CREATION_FAILED",
		"建立會員集點卡失敗",
		"",
	)

	// Earn-related errors
	ErrInvalidEarnToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_EARN_TOKEN",
		"無效的集點代碼",
		"",
	)

	ErrTransientStore = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSIENT_STORE_ERROR",
		"系統忙碌中，請稍後再試",
		"",
	)

	// Redemption-related errors
	ErrNoRewardAvailable = NewBaseError(
		http.StatusNotFound,
		"NO_REWARD_AVAILABLE",
		"目前沒有可兌換的獎勵",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"無效的認證資訊",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
