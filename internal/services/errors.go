package services

// Kind classifies a domain error for the transport layer.
type Kind int

const (
	KindValidation Kind = iota + 1 // malformed or conflicting input
	KindAuth                       // bad credentials, bad token, inactive account
	KindForbidden                  // caller does not own the resource
	KindNotFound                   // missing parent or child
)

// Error is a domain error with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Error variables
var (
	ErrEmailAlreadyRegistered = newError(KindValidation, "Email already registered")
	ErrInvalidEmail           = newError(KindValidation, "Invalid email address")
	ErrPasswordRequired       = newError(KindValidation, "Password is required")
	ErrInvalidToken           = newError(KindValidation, "Invalid token")
	ErrTokenExpired           = newError(KindValidation, "Token expired")
	ErrAlreadyActive          = newError(KindValidation, "Parent is already active")
	ErrAlreadyVerified        = newError(KindValidation, "Account already verified")
	ErrChildNameRequired      = newError(KindValidation, "Child name is required")

	ErrInvalidCredentials  = newError(KindAuth, "Invalid email or password")
	ErrAccountNotActivated = newError(KindAuth, "Account is not activated")
	ErrUnauthorized        = newError(KindAuth, "Could not validate credentials")

	ErrForbidden = newError(KindForbidden, "Not authorized to access this resource")

	ErrParentNotFound = newError(KindNotFound, "Parent not found")
	ErrChildNotFound  = newError(KindNotFound, "Child not found")
)
