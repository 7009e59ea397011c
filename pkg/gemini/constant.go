package gemini

import "time"

const (
	// BaseURL is the Generative Language REST endpoint.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when GeminiConfig.Model is empty.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTimeout bounds one generateContent call.
	DefaultTimeout = 30 * time.Second
	// DefaultRequestsPerMinute is the client side rate limit.
	DefaultRequestsPerMinute = 30

	headerAPIKey = "x-goog-api-key"

	RoleUser  = "user"
	RoleModel = "model"
)
