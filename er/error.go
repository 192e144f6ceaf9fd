// Package er provides the typed error result used throughout txcore
// instead of the stdlib error interface. Every fallible core operation
// returns an er.R, nil on success, so that callers can switch on Kind()
// instead of string-matching messages.
package er

import "fmt"

// Kind enumerates the error taxonomy every package in this module
// reports through. Do not collapse distinct kinds into Internal/Unknown:
// a caller deciding whether to retry needs to tell OutOfRange from
// InvalidState from NotFound.
type Kind int

const (
	Unknown Kind = iota
	InvalidArgument
	InvalidState
	OutOfRange
	Duplicated
	NotFound
	MemoryFull
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidState:
		return "InvalidState"
	case OutOfRange:
		return "OutOfRange"
	case Duplicated:
		return "Duplicated"
	case NotFound:
		return "NotFound"
	case MemoryFull:
		return "MemoryFull"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// R is the error-result interface returned by every core operation.
// A nil R means success.
type R interface {
	error
	Kind() Kind
	// Message is the error text without the kind prefix.
	Message() string
}

type errorCode struct {
	kind    Kind
	code    string
	message string
	cause   error
}

func (e *errorCode) Kind() Kind      { return e.kind }
func (e *errorCode) Message() string { return e.message }

func (e *errorCode) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s[%s]: %s: %s", e.kind, e.code, e.message, e.cause.Error())
	}
	return fmt.Sprintf("%s[%s]: %s", e.kind, e.code, e.message)
}

func (e *errorCode) Unwrap() error { return e.cause }

// ErrorType is a sentinel constructor: packages declare package-level
// vars of this shape and call CodeWithDetail once per distinct error
// site, the way the teacher declares InsufficientFundsError et al.
type ErrorType struct {
	kind Kind
}

// CodeWithDetail returns a fresh ErrorCode with a stable code name and
// a human detail string. Call sites then invoke .Default() or .New(...)
// to produce an R carrying that code.
func (t ErrorType) CodeWithDetail(code, detail string) *ErrorCode {
	return &ErrorCode{kind: t.kind, code: code, detail: detail}
}

// ErrorCode is a named error site; it is not itself an R until
// instantiated via Default/New/Wrap.
type ErrorCode struct {
	kind   Kind
	code   string
	detail string
}

// Default returns the sentinel's detail text as the error.
func (c *ErrorCode) Default() R {
	return &errorCode{kind: c.kind, code: c.code, message: c.detail}
}

// New returns the sentinel with a more specific message, replacing detail.
func (c *ErrorCode) New(message string) R {
	return &errorCode{kind: c.kind, code: c.code, message: message}
}

// Wrap attaches an underlying cause (e.g. from a crypto oracle) to the sentinel.
func (c *ErrorCode) Wrap(cause error) R {
	return &errorCode{kind: c.kind, code: c.code, message: c.detail, cause: cause}
}

// Is reports whether err is (or wraps) this sentinel code.
func (c *ErrorCode) Is(err R) bool {
	if err == nil {
		return false
	}
	var e error = err
	for e != nil {
		if ec, ok := e.(*errorCode); ok && ec.code == c.code {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}

var (
	InvalidArgumentType = ErrorType{kind: InvalidArgument}
	InvalidStateType    = ErrorType{kind: InvalidState}
	OutOfRangeType      = ErrorType{kind: OutOfRange}
	DuplicatedType      = ErrorType{kind: Duplicated}
	NotFoundType        = ErrorType{kind: NotFound}
	MemoryFullType      = ErrorType{kind: MemoryFull}
	InternalType        = ErrorType{kind: Internal}
	UnknownType         = ErrorType{kind: Unknown}
)

// generic, ungrounded-site constructors mirroring the teacher's er.New/er.E
var genericInvalidArgument = InvalidArgumentType.CodeWithDetail("Generic", "")

// New constructs an ad-hoc InvalidArgument-kind error from a message,
// matching the teacher's er.New for call sites that don't warrant a
// dedicated sentinel.
func New(message string) R {
	return genericInvalidArgument.New(message)
}

// E wraps a foreign error (e.g. io.Reader failure) as an Unknown-kind R,
// matching the teacher's er.E(err) adapter.
func E(err error) R {
	if err == nil {
		return nil
	}
	return &errorCode{kind: Unknown, code: "Wrapped", message: err.Error(), cause: err}
}

// LoopBreak is a sentinel used by ForEach-style iteration helpers
// (see btcutil/util/tmap) to stop early without signalling a real error.
var LoopBreak R = InternalType.CodeWithDetail("LoopBreak", "iteration stopped early").Default()

// IsLoopBreak reports whether err is the LoopBreak sentinel.
func IsLoopBreak(err R) bool {
	return err == LoopBreak
}
