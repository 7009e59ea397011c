package usecase

import (
	"time"

	"webaudit-srv/internal/chat"
	"webaudit-srv/pkg/gemini"
	"webaudit-srv/pkg/log"
)

type implUseCase struct {
	gemini      gemini.IGemini
	l           log.Logger
	temperature float64
	now         func() time.Time
}

// New - Factory function
func New(
	gemini gemini.IGemini,
	l log.Logger,
	temperature float64,
) chat.UseCase {
	if temperature <= 0 {
		temperature = chat.DefaultTemperature
	}
	return &implUseCase{
		gemini:      gemini,
		l:           l,
		temperature: temperature,
		now:         time.Now,
	}
}
