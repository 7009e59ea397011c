package audit

import (
	"errors"

	"webaudit-srv/pkg/extract"
)

// Domain errors
var (
	// ErrInvalidURL - input does not normalize to an absolute http(s) URL
	ErrInvalidURL = errors.New("audit: invalid url")

	// ErrConfiguration - bad credentials or exhausted quota on the model service
	ErrConfiguration = errors.New("audit: model service configuration error")

	// ErrServiceUnavailable - every attempt failed for another reason
	ErrServiceUnavailable = errors.New("audit: model service unavailable")

	// ErrMalformedReport - model text could not be turned into a valid Report
	ErrMalformedReport = errors.New("audit: malformed report")

	// ErrUnsupportedSchema - payload carries a schema version this build does not know
	ErrUnsupportedSchema = errors.New("audit: unsupported report schema version")
)

// Error kinds kept for logs and events.
const (
	KindInvalidURL         = "INVALID_URL"
	KindConfiguration      = "CONFIGURATION_ERROR"
	KindServiceUnavailable = "SERVICE_UNAVAILABLE"
	KindMalformedReport    = "MALFORMED_REPORT"
	KindNoJSONFound        = "NO_JSON_FOUND"
	KindUnknown            = "UNKNOWN"
)

// Kind returns the structured kind of an audit error.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidURL):
		return KindInvalidURL
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrServiceUnavailable):
		return KindServiceUnavailable
	case errors.Is(err, extract.ErrNoJSONFound):
		return KindNoJSONFound
	case errors.Is(err, ErrMalformedReport):
		return KindMalformedReport
	default:
		return KindUnknown
	}
}

// UserMessage returns the message shown to the end user for an audit error.
// It never contains raw model output.
func UserMessage(err error) string {
	switch Kind(err) {
	case KindInvalidURL:
		return "Please enter a valid website address (http or https)."
	case KindConfiguration:
		return "The analysis service rejected the request. Check the API key and quota."
	case KindServiceUnavailable:
		return "The analysis service is unavailable right now. Please try again later."
	case KindNoJSONFound, KindMalformedReport:
		return "Failed to parse the audit report. Please try again."
	default:
		return "Something went wrong while analyzing the site."
	}
}
