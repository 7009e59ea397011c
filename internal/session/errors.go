package session

import "errors"

// Domain errors
var (
	// ErrNotFound - Session không tồn tại hoặc đã hết hạn
	ErrNotFound = errors.New("session: not found")

	// ErrScanInProgress - Đang có scan chạy
	ErrScanInProgress = errors.New("session: scan in progress")

	// ErrNotIdle - Đã có report, phải reset trước khi scan mới
	ErrNotIdle = errors.New("session: not idle, reset first")

	// ErrNoReport - Chưa có report (state khác COMPLETE)
	ErrNoReport = errors.New("session: no report available")

	// ErrReplyPending - Đang chờ câu trả lời chat trước
	ErrReplyPending = errors.New("session: a chat reply is already pending")

	// ErrArchiveDisabled - MinIO chưa được cấu hình
	ErrArchiveDisabled = errors.New("session: archive storage is not configured")

	// ErrShuttingDown - Service đang tắt, không nhận scan mới
	ErrShuttingDown = errors.New("session: service is shutting down")
)
