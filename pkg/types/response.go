package types

// SuccessEnvelope wraps every 2xx JSON body. The catalog routes put a
// product DTO (or a list of them) under data; the session routes their
// token payload or created user.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape. Message carries legacy wording some
// storefront clients string-match on, so it is passed through verbatim.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps every non-2xx JSON body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// NewErrorEnvelope builds the envelope for a public code/message pair.
// Details stay nil unless the code allows exposing them.
func NewErrorEnvelope(code, message string, details any) ErrorEnvelope {
	return ErrorEnvelope{Error: APIError{
		Code:    code,
		Message: message,
		Details: details,
	}}
}
