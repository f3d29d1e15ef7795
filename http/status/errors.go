package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrMethodNotImplemented = NewError(NotImplemented, "request method is not supported")
	ErrURITooLong           = NewError(RequestURITooLong, "request URI too long")
	ErrHeaderFieldsTooLarge = NewError(HeaderFieldsTooLarge, "too large headers section")
	ErrBadContentLength     = NewError(BadRequest, "malformed Content-Length value")
	ErrBodyLengthMismatch   = NewError(BadRequest, "received body length differs from Content-Length")
	ErrParamTooLong         = NewError(RequestEntityTooLarge, "parameter value does not fit the buffer")
	ErrUnknownContentType   = NewError(InternalServerError, "no response head for unknown content type")
	ErrShortBuffer          = NewError(InternalServerError, "response head does not fit the buffer")
)
