package httperr

import "errors"

// Kind buckets failures for logging and boundary mapping. Every kind except
// infrastructure reaches the client as HTTP 200 {success:false, message}.
type Kind int

const (
	KindValidation Kind = iota
	KindBusinessRule
	KindNotFound
	KindAuth
	KindConfigMissing
	KindInfrastructure
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func Business(code, message string) *Error {
	return New(KindBusinessRule, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Auth(code, message string) *Error {
	return New(KindAuth, code, message)
}

func ConfigMissing(code, message string) *Error {
	return New(KindConfigMissing, code, message)
}

func Infra(code, message string) *Error {
	return New(KindInfrastructure, code, message)
}

func IsCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// UserMessage resolves the message shown to the client. Unknown errors get
// the fallback so internals never leak.
func UserMessage(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
