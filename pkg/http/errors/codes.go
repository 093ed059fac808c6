package errors

// Canonical messages for the error envelope.
const (
	MsgBadRequest    = "bad request"
	MsgNotFound      = "Not found"
	MsgUnprocessable = "Unprocessable"
	MsgInternalError = "Internal server error"
)
