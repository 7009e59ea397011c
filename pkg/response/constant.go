package response

const (
	MessageSuccess       = "Success"
	MessageInternalError = "Something went wrong"
	MessageBadRequest    = "Invalid request"

	ErrorCodeSuccess  = 0
	ErrorCodeInternal = 500
)
