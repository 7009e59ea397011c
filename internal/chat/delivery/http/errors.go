package http

import (
	"errors"

	"webaudit-srv/internal/chat"
	pkgErrors "webaudit-srv/pkg/errors"
)

var (
	errMessageRequired = pkgErrors.NewHTTPError(400, "Message is required")
	errMessageTooLong  = pkgErrors.NewHTTPError(400, "Message too long (max 2000 characters)")
	errReportRequired  = pkgErrors.NewHTTPError(400, "Report is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, chat.ErrReportRequired):
		return errReportRequired
	default:
		panic(err)
	}
}
