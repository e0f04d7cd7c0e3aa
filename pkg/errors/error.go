package errors

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// QuoteNetworkError represents an error reaching the quote endpoint.
	QuoteNetworkError ErrorCode = "quote_network_error"
	// QuoteUnknownSymbolError represents a non-success HTTP status from the
	// quote endpoint, typically an unknown ticker symbol.
	QuoteUnknownSymbolError ErrorCode = "quote_unknown_symbol_error"
	// QuoteParseError represents an error decoding the quote response body.
	QuoteParseError ErrorCode = "quote_parse_error"
	// QuoteEmptyResponseError represents a quote response with no rows.
	QuoteEmptyResponseError ErrorCode = "quote_empty_response_error"
	// QuoteMultiRowError represents a quote response with more rows than requested symbols.
	QuoteMultiRowError ErrorCode = "quote_multi_row_error"

	// ConfigPortError represents an invalid listen port in the configuration.
	ConfigPortError ErrorCode = "config_port_error"
	// ConfigIntervalError represents an invalid poll interval in the configuration.
	ConfigIntervalError ErrorCode = "config_interval_error"
	// ConfigRolloverError represents an invalid rolling buffer size in the configuration.
	ConfigRolloverError ErrorCode = "config_rollover_error"
	// ConfigTimezoneError represents a display timezone that cannot be loaded.
	ConfigTimezoneError ErrorCode = "config_timezone_error"
	// ConfigBaseURLError represents a missing quote endpoint base url in the configuration.
	ConfigBaseURLError ErrorCode = "config_base_url_error"
)

// BaseError is an `error` type containing an array of ErrorDetails.
// This error provides basic functions for performing transformations
// on a list of ErrorDetails.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("; object: ")
		if err.Object != nil {
			buff.WriteString(reflect.TypeOf(err.Object).String())
		}
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// PrependFields prepend all field on ErrorDetails with given prefix. Will skip ErrorDetail without field
func (b *BaseError) PrependFields(prefix string) {
	for _, d := range b.GetDetails() {
		if d.Field == "" {
			continue
		}
		d.Field = fmt.Sprintf("%s%s", prefix, d.Field)
	}
}

// IsAllExpectedCode check if all ErrorDetails code is expected from given codes
func (b *BaseError) IsAllExpectedCode(codes ...string) bool {
	if len(b.details) == 0 {
		return false
	}

	expectedCodes := map[string]bool{}
	for _, code := range codes {
		expectedCodes[code] = true
	}

	for _, d := range b.GetDetails() {
		if !expectedCodes[d.Code] {
			return false
		}
	}
	return true
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.GetDetails() {
		if d.Code == code {
			return true
		}
	}
	return false
}
