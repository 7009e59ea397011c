package chat

import (
	"strings"
	"unicode/utf8"
)

// ValidateMessage checks a user question before it is sent or stored.
func ValidateMessage(msg string) error {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return ErrMessageRequired
	}
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
