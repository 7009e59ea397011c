package http

import (
	"errors"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/export"
	pkgErrors "webaudit-srv/pkg/errors"
)

var (
	errUnsupportedFormat = pkgErrors.NewHTTPError(400, "Unsupported export format")
)

// mapAuditError turns a pipeline error into an HTTP error carrying the user-facing message.
func mapAuditError(err error) *pkgErrors.HTTPError {
	msg := audit.UserMessage(err)
	switch {
	case errors.Is(err, audit.ErrInvalidURL):
		return pkgErrors.NewHTTPError(400, msg)
	case errors.Is(err, audit.ErrMalformedReport):
		return pkgErrors.NewHTTPError(502, msg)
	case errors.Is(err, audit.ErrConfiguration), errors.Is(err, audit.ErrServiceUnavailable):
		return pkgErrors.NewHTTPError(503, msg)
	default:
		return nil
	}
}

func (h *handler) mapError(err error) error {
	if httpErr := mapAuditError(err); httpErr != nil {
		return httpErr
	}
	switch {
	case errors.Is(err, export.ErrUnsupportedFormat):
		return errUnsupportedFormat
	default:
		panic(err)
	}
}
