package chat

import "errors"

// Domain errors
var (
	// ErrMessageRequired - Message rỗng
	ErrMessageRequired = errors.New("chat: message is required")

	// ErrMessageTooLong - Message quá dài (> 2000 chars)
	ErrMessageTooLong = errors.New("chat: message too long")

	// ErrReportRequired - Chưa có report để hỏi
	ErrReportRequired = errors.New("chat: report is required")
)
