package cstmerr

import (
	"fmt"
)

// BaseError provides a base for custom errors, allowing for wrapped errors.
type BaseError struct {
	Msg string
	Err error // Underlying error
}

func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *BaseError) Unwrap() error {
	return e.Err
}

// ConfigError indicates a problem with configuration.
type ConfigError struct{ BaseError }

func NewConfigError(msg string, underlyingErr error) *ConfigError {
	return &ConfigError{BaseError{Msg: msg, Err: underlyingErr}}
}

// APIClientError indicates a general problem with the HTTP client or response decoding.
type APIClientError struct{ BaseError }

func NewAPIClientError(underlyingErr error) *APIClientError {
	return &APIClientError{BaseError{Msg: "API client error", Err: underlyingErr}}
}

// ServerInternalError is returned for every HTTP 500 response. The body is
// never decoded; Diagnostic holds the raw bytes for callers that want them.
type ServerInternalError struct {
	BaseError
	RequestURL string
	Diagnostic []byte
}

func NewServerInternalError(requestURL string, diagnostic []byte) *ServerInternalError {
	return &ServerInternalError{
		BaseError:  BaseError{Msg: "server internal error"},
		RequestURL: requestURL,
		Diagnostic: diagnostic,
	}
}

// APILogicalFailure indicates a response whose envelope did not carry ok=true.
// Response holds the full transport response so callers can inspect it.
type APILogicalFailure struct {
	BaseError
	StatusCode int
	Code       int
	Message    string // msg field of the envelope
	Body       []byte
	Response   any
}

func NewAPILogicalFailure(statusCode, code int, message string, body []byte, response any) *APILogicalFailure {
	return &APILogicalFailure{
		BaseError:  BaseError{Msg: fmt.Sprintf("API request failed with status %d", statusCode)},
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Body:       body,
		Response:   response,
	}
}

func (e *APILogicalFailure) Error() string {
	return fmt.Sprintf("%s (code %d) - %s", e.BaseError.Msg, e.Code, e.Message)
}

// TransportError indicates no usable response was received. Response may be nil.
type TransportError struct {
	BaseError
	Response any
}

func NewTransportError(response any, underlyingErr error) *TransportError {
	return &TransportError{BaseError: BaseError{Msg: "transport error", Err: underlyingErr}, Response: response}
}

// RequestPreparationError indicates the request could not be prepared and was not sent.
type RequestPreparationError struct{ BaseError }

func NewRequestPreparationError(underlyingErr error) *RequestPreparationError {
	return &RequestPreparationError{BaseError{Msg: "failed to prepare request", Err: underlyingErr}}
}

// VersionParseError indicates an invalid version string.
type VersionParseError struct {
	BaseError
	Version string
}

func NewVersionParseError(version string, underlyingErr error) *VersionParseError {
	return &VersionParseError{
		BaseError: BaseError{Msg: fmt.Sprintf("invalid version %q", version), Err: underlyingErr},
		Version:   version,
	}
}

// TokenStoreError indicates the token slot could not be read or written.
type TokenStoreError struct{ BaseError }

func NewTokenStoreError(msg string, underlyingErr error) *TokenStoreError {
	return &TokenStoreError{BaseError{Msg: "Token store error: " + msg, Err: underlyingErr}}
}

// FileIOError indicates an I/O problem during file operations.
type FileIOError struct{ BaseError }

func NewFileIOError(msg string, underlyingErr error) *FileIOError {
	return &FileIOError{BaseError{Msg: "I/O error during file operation: " + msg, Err: underlyingErr}}
}

type DBError struct{ BaseError }

func NewDBError(msg string, underlyingErr error) *DBError {
	return &DBError{BaseError{Msg: "Database error: " + msg, Err: underlyingErr}}
}

// DBConnectionError indicates a problem connecting to the database.
type DBConnectionError struct{ BaseError }

func NewDBConnectionError(msg string, underlyingErr error) *DBConnectionError {
	return &DBConnectionError{BaseError{Msg: "DB connection error: " + msg, Err: underlyingErr}}
}

// DBQueryError indicates a problem executing a database query.
type DBQueryError struct{ BaseError }

func NewDBQueryError(msg string, underlyingErr error) *DBQueryError {
	return &DBQueryError{BaseError{Msg: "DB query error: " + msg, Err: underlyingErr}}
}

// DBNotFoundError indicates that a query returned no results when at least one was expected.
type DBNotFoundError struct{ BaseError }

func NewDBNotFoundError(msg string, underlyingErr error) *DBNotFoundError {
	return &DBNotFoundError{BaseError{Msg: "DB not found error: " + msg, Err: underlyingErr}}
}
