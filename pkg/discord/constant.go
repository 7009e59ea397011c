package discord

import "time"

const BaseURL = "https://discord.com/api/webhooks"

const (
	colorInfo  = 0x3498DB
	colorError = 0xE74C3C

	// Discord rejects embed descriptions above 4096 characters.
	maxDescriptionLen = 4000
	maxFieldLen       = 1000
)

func DefaultConfig() Config {
	return Config{
		BaseURL:       BaseURL,
		Timeout:       10 * time.Second,
		RetryCount:    2,
		RetryDelay:    time.Second,
		Username:      "webaudit-srv",
		AlertsPerMin:  20,
		AlertBurstMax: 5,
	}
}
