package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCurrency indicates a currency code outside the supported set.
var ErrInvalidCurrency = errors.New("unsupported currency code")

// ErrRateLimitExceeded indicates that the provider call budget for the
// current window is exhausted and no cached or stored rate could serve
// as a fallback.
var ErrRateLimitExceeded = errors.New("exchange rate provider call limit exceeded")

// ErrProvider indicates that the external rate provider returned an error
// payload, an unparseable response, or omitted the requested target currency.
var ErrProvider = errors.New("exchange rate provider error")

// ErrStoreWrite indicates a failure persisting a freshly fetched rate.
// It is logged by the conversion engine and never surfaced as the failure
// of the conversion itself.
var ErrStoreWrite = errors.New("failed to persist exchange rate")

// ErrRateUnavailable is the generic wrapper for any other rate resolution failure.
var ErrRateUnavailable = errors.New("exchange rate unavailable")
