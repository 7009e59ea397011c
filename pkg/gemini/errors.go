package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed covers transport, auth, quota and decode failures.
	ErrGenerationFailed = errors.New("gemini: generation failed")
	// ErrEmptyResponse is returned when the service answered without any text.
	ErrEmptyResponse = errors.New("gemini: empty response")
	// ErrAPIKeyRequired is returned instead of calling the service without a credential.
	ErrAPIKeyRequired = fmt.Errorf("%w: API key is required", ErrGenerationFailed)
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API returned status %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API returned status %d: %s", e.StatusCode, e.Message)
}

// Is makes every APIError match ErrGenerationFailed.
func (e *APIError) Is(target error) bool {
	return target == ErrGenerationFailed
}
