package response

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"webaudit-srv/pkg/discord"
	"webaudit-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: ErrorCodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Accepted writes a 202 response wrapping data.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: ErrorCodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// File writes a downloadable attachment.
func File(c *gin.Context, fileName, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, data)
}

// Error writes err as a JSON error response.
// Unknown errors are reported to Discord when d is not nil.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if stdErrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode(), Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var collector *errors.ValidationErrorCollector
	if stdErrors.As(err, &collector) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    collector.Errors(),
		})
		return
	}

	var verrs validator.ValidationErrors
	if stdErrors.As(err, &verrs) {
		details := make([]errors.ValidationError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, errors.ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on '%s'", fe.Tag()),
			})
		}
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    details,
		})
		return
	}

	if isBindError(err) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
		})
		return
	}

	reportToDiscord(c.Request.Context(), d, "Internal error", err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternal,
		Message:   MessageInternalError,
	})
}

// PanicError writes a 500 after a recovered panic.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	err := fmt.Errorf("panic: %v\n%s", recovered, debug.Stack())
	reportToDiscord(c.Request.Context(), d, "Panic recovered", err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternal,
		Message:   MessageInternalError,
	})
}

func reportToDiscord(ctx context.Context, d discord.IDiscord, title string, err error) {
	if d == nil {
		return
	}
	_ = d.SendError(ctx, title, err.Error(), err)
}
