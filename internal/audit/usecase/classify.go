package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"webaudit-srv/internal/audit"
	"webaudit-srv/pkg/gemini"
)

var configurationStatuses = map[string]bool{
	"PERMISSION_DENIED":  true,
	"UNAUTHENTICATED":    true,
	"RESOURCE_EXHAUSTED": true,
}

var configurationMarkers = []string{"401", "403", "429", "api key", "api_key", "quota", "permission"}

// classify turns the last attempt error into ErrConfiguration or ErrServiceUnavailable.
func classify(err error) error {
	if err == nil {
		err = gemini.ErrEmptyResponse
	}
	if isConfigurationError(err) {
		return fmt.Errorf("%w: %w", audit.ErrConfiguration, err)
	}
	return fmt.Errorf("%w: %w", audit.ErrServiceUnavailable, err)
}

func isConfigurationError(err error) bool {
	if errors.Is(err, gemini.ErrAPIKeyRequired) {
		return true
	}

	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
			return true
		}
		if configurationStatuses[apiErr.Status] {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range configurationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
