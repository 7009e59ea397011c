package http

import (
	"errors"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/export"
	"webaudit-srv/internal/session"
	pkgErrors "webaudit-srv/pkg/errors"
	"webaudit-srv/pkg/minio"
)

var (
	errNotFound          = pkgErrors.NewHTTPError(404, "Session not found or expired")
	errScanInProgress    = pkgErrors.NewHTTPError(409, "A scan is already running for this session")
	errNotIdle           = pkgErrors.NewHTTPError(409, "Reset the session before starting a new scan")
	errNoReport          = pkgErrors.NewHTTPError(409, "No report available yet")
	errReplyPending      = pkgErrors.NewHTTPError(409, "Wait for the previous reply")
	errArchiveDisabled   = pkgErrors.NewHTTPError(503, "Report archive is not configured")
	errShuttingDown      = pkgErrors.NewHTTPError(503, "Service is shutting down")
	errMessageRequired   = pkgErrors.NewHTTPError(400, "Message is required")
	errMessageTooLong    = pkgErrors.NewHTTPError(400, "Message too long (max 2000 characters)")
	errUnsupportedFormat = pkgErrors.NewHTTPError(400, "Unsupported export format")
	errArchiveFailed     = pkgErrors.NewHTTPError(502, "Report archive failed")
)

func (h *handler) mapError(err error) error {
	var storageErr *minio.StorageError
	switch {
	case errors.Is(err, session.ErrNotFound):
		return errNotFound
	case errors.Is(err, session.ErrScanInProgress):
		return errScanInProgress
	case errors.Is(err, session.ErrNotIdle):
		return errNotIdle
	case errors.Is(err, session.ErrNoReport):
		return errNoReport
	case errors.Is(err, session.ErrReplyPending):
		return errReplyPending
	case errors.Is(err, session.ErrArchiveDisabled):
		return errArchiveDisabled
	case errors.Is(err, session.ErrShuttingDown):
		return errShuttingDown
	case errors.Is(err, chat.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, export.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, audit.ErrInvalidURL):
		return pkgErrors.NewHTTPError(400, audit.UserMessage(err))
	case errors.Is(err, audit.ErrMalformedReport):
		return pkgErrors.NewHTTPError(502, audit.UserMessage(err))
	case errors.Is(err, audit.ErrConfiguration), errors.Is(err, audit.ErrServiceUnavailable):
		return pkgErrors.NewHTTPError(503, audit.UserMessage(err))
	case errors.As(err, &storageErr):
		return errArchiveFailed
	default:
		panic(err)
	}
}
