package common

import (
	"errors"
	"net/http"
)

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 取得原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對預定義錯誤
func (e *CustomError) Is(target error) bool {
	var t *CustomError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// 預定義錯誤代碼
const (
	ErrCodeInvalidRequest      = "INVALID_REQUEST"      // 400
	ErrCodeNotFound            = "NOT_FOUND"            // 404
	ErrCodeRequestTooLarge     = "REQUEST_TOO_LARGE"    // 413
	ErrCodeInternalError       = "INTERNAL_ERROR"       // 500
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE" // 502
)

// 預定義錯誤
var (
	ErrInvalidRequest      = NewError(ErrCodeInvalidRequest, "Invalid request format", http.StatusBadRequest, nil)
	ErrNotFound            = NewError(ErrCodeNotFound, "Not found", http.StatusNotFound, nil)
	ErrInternalError       = NewError(ErrCodeInternalError, "Internal server error", http.StatusInternalServerError, nil)
	ErrUpstreamUnavailable = NewError(ErrCodeUpstreamUnavailable, "Upstream recipe API unavailable", http.StatusBadGateway, nil)
)
