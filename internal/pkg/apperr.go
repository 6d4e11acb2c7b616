package pkg

// Error codes rendered in the response envelope.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeResourceExists     = "RESOURCE_EXISTS"
	CodeNotAllowedAccess   = "NOT_ALLOWED_ACCESS"
	CodeNotSignedIn        = "NOT_SIGNEDIN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_SERVER_ERROR"
)

// Error is a domain failure carried from service to handler and shaped
// into one {param, message, code} entry of the error envelope.
type Error struct {
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *Error) Error() string { return e.Message }

func InvalidInput(param, message string) *Error {
	return &Error{Param: param, Message: message, Code: CodeInvalidInput}
}

func NotFound(param, message string) *Error {
	return &Error{Param: param, Message: message, Code: CodeResourceNotFound}
}

func Exists(param, message string) *Error {
	return &Error{Param: param, Message: message, Code: CodeResourceExists}
}

func InvalidCredentials(param, message string) *Error {
	return &Error{Param: param, Message: message, Code: CodeInvalidCredentials}
}

func NotAllowed() *Error {
	return &Error{Message: "You are not authorized to perform this action.", Code: CodeNotAllowedAccess}
}

func NotSignedIn() *Error {
	return &Error{Message: "You need to sign in to proceed.", Code: CodeNotSignedIn}
}

func Internal() *Error {
	return &Error{Message: "Internal server error", Code: CodeInternalError}
}
