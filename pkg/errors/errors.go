package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeForbidden     Code = "FORBIDDEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeStateConflict Code = "STATE_CONFLICT"
	CodeInternal      Code = "INTERNAL_ERROR"
	CodeDependency    Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a coded error surfaces to the chat user.
type Metadata struct {
	UserMessage string
	Recoverable bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		UserMessage: "Invalid input, please try again.",
		Recoverable: true,
	},
	CodeForbidden: {
		UserMessage: "You do not have permission to do that.",
		Recoverable: true,
	},
	CodeNotFound: {
		UserMessage: "Not found.",
		Recoverable: true,
	},
	CodeConflict: {
		UserMessage: "That conflicts with existing data.",
		Recoverable: true,
	},
	CodeStateConflict: {
		UserMessage: "That action is not possible right now.",
		Recoverable: true,
	},
	CodeInternal: {
		UserMessage: "Something went wrong, please try again later.",
		Recoverable: false,
	},
	CodeDependency: {
		UserMessage: "Something went wrong, please try again later.",
		Recoverable: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// UserText resolves the chat-facing text for any error. Recoverable codes
// surface their own message; everything else falls back to the generic text.
func UserText(err error) string {
	typed := As(err)
	if typed == nil {
		return MetadataFor(CodeInternal).UserMessage
	}
	meta := MetadataFor(typed.Code())
	if meta.Recoverable && typed.Message() != "" {
		return typed.Message()
	}
	return meta.UserMessage
}

// Chain flattens the unwrap chain for structured logging.
func Chain(err error) []string {
	var chain []string
	for e := err; e != nil; e = stdErrors.Unwrap(e) {
		chain = append(chain, fmt.Sprintf("%T: %v", e, e))
	}
	return chain
}
