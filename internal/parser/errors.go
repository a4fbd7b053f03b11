package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a command failed to parse
type ErrorKind int

const (
	KindPreambleNotAllowed ErrorKind = iota + 1
	KindMissingOrMisorderedPrefix
	KindDuplicatePrefix
	KindEmptyTagValue
	KindInvalidDate
	KindInvalidTime
	KindInvalidRole
	KindInvalidIndex
	KindInvalidName
	KindInvalidPhone
	KindInvalidEmail
	KindInvalidAddress
	KindUnknownCommand
)

func (k ErrorKind) String() string {
	switch k {
	case KindPreambleNotAllowed:
		return "PREAMBLE_NOT_ALLOWED"
	case KindMissingOrMisorderedPrefix:
		return "MISSING_OR_MISORDERED_PREFIX"
	case KindDuplicatePrefix:
		return "DUPLICATE_PREFIX"
	case KindEmptyTagValue:
		return "EMPTY_TAG_VALUE"
	case KindInvalidDate:
		return "INVALID_DATE"
	case KindInvalidTime:
		return "INVALID_TIME"
	case KindInvalidRole:
		return "INVALID_ROLE"
	case KindInvalidIndex:
		return "INVALID_INDEX"
	case KindInvalidName:
		return "INVALID_NAME"
	case KindInvalidPhone:
		return "INVALID_PHONE"
	case KindInvalidEmail:
		return "INVALID_EMAIL"
	case KindInvalidAddress:
		return "INVALID_ADDRESS"
	case KindUnknownCommand:
		return "UNKNOWN_COMMAND"
	default:
		return "UNKNOWN"
	}
}

// ParseError is a user-facing parse failure. Error returns the message verbatim.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(kind ErrorKind, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg}
}

func newParseErrorf(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err, if err is a ParseError
func KindOf(err error) (ErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
