package response

const (
	// MessageSuccess is the message body of successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when the real error must not leak.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for 500s.
	InternalServerErrorCode = 500
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
