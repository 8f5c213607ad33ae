package constant

import "fmt"

// Error is the service-level error contract carried up to handlers.
type Error interface {
	error
	Code() int
	Message() string
	Data() interface{}
	WithData(data interface{}) Error
}

type CustomError struct {
	code    int
	message string
	data    interface{}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.code, e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) Data() interface{} {
	return e.data
}

func (e *CustomError) WithData(data interface{}) Error {
	e.data = data
	return e
}

// NewError resolves a registered code to an Error.
func NewError(code int) Error {
	if msg, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: msg}
	}
	return &CustomError{code: code, message: "unknown error"}
}

func GetErrorMessage(code int) (string, bool) {
	msg, exists := ErrorMessages[code]
	return msg, exists
}
