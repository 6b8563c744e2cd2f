package apperrors

import "errors"

// Kind sentinels. Match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyResult  = errors.New("no results returned")
	ErrWriteFailure = errors.New("write failure")
	ErrStoreError   = errors.New("store error")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindEmptyResult
	KindWriteFailure
	KindStoreError
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindEmptyResult:
		return "empty result"
	case KindWriteFailure:
		return "write failure"
	case KindStoreError:
		return "store error"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindEmptyResult:
		return ErrEmptyResult
	case KindWriteFailure:
		return ErrWriteFailure
	case KindStoreError:
		return ErrStoreError
	default:
		return nil
	}
}

// Error is the failure value returned by every data access operation.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

// Unwrap exposes the store cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func NotFound(op, message string) error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

func EmptyResult(op string) error {
	return &Error{Kind: KindEmptyResult, Op: op, Message: ErrEmptyResult.Error()}
}

func WriteFailure(op, message string, cause error) error {
	return &Error{Kind: KindWriteFailure, Op: op, Message: message, Err: cause}
}

func StoreError(op, message string, cause error) error {
	return &Error{Kind: KindStoreError, Op: op, Message: message, Err: cause}
}

// KindOf reports the kind carried by err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
