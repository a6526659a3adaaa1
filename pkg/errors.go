package pkg

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ExposeErrorDetails = false

func init() {
	if gin.DebugMode == gin.Mode() || gin.TestMode == gin.Mode() {
		ExposeErrorDetails = true
	}
}

// Reusable errors
var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrUpstreamStatus    = errors.New("unexpected upstream status")
)

// ErrorCode defines a standardized error code
type ErrorCode struct {
	Code    string
	Status  int
	Message string // default message
}

var (
	ErrInvalidInputCode = ErrorCode{Code: "APP_INVALID_INPUT", Status: http.StatusBadRequest, Message: "invalid input"}
	ErrServerCode       = ErrorCode{Code: "APP_INTERNAL", Status: http.StatusInternalServerError, Message: "internal server error"}

	// Prediction service
	ErrUpstreamCode = ErrorCode{Code: "UPSTREAM_ERROR", Status: http.StatusBadGateway, Message: "prediction service error"}
)

type AppError struct {
	Code    ErrorCode
	Message string // public-facing message
	Cause   error  // internal cause (wrapped)
}

func (e AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}
func (e AppError) Unwrap() error { return e.Cause }

func NewAppError(code ErrorCode, msg string, cause error) error {
	if msg == "" {
		msg = code.Message
	}
	return AppError{Code: code, Message: msg, Cause: cause}
}

// ErrorResponse defines the standardized error response format
type ErrorResponse struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"traceId,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToErrorResponse converts an error into an ErrorResponse, logging details and optionally exposing error messages.
// If the error is not an AppError, it is converted to a generic 500 error.
func ToErrorResponse(logger *zap.Logger, traceID string, err error) ErrorResponse {
	resp := ErrorResponse{
		Status:  ErrServerCode.Status,
		Code:    ErrServerCode.Code,
		Message: ErrServerCode.Message,
		TraceID: traceID,
	}
	var appErr AppError
	if errors.As(err, &appErr) {
		resp.Status = appErr.Code.Status
		resp.Code = appErr.Code.Code
		resp.Message = appErr.Message
	}
	if resp.Status >= http.StatusInternalServerError {
		logger.Error("application error", zap.String(TraceId, traceID), zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.String(TraceId, traceID), zap.Error(err))
	}
	if ExposeErrorDetails {
		resp.Details = err.Error()
	}
	return resp
}
