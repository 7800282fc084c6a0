package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

const (
	ErrCodeAbsentInstant   string = "ABSENT_INSTANT"
	ErrCodeInvalidPattern  string = "INVALID_PATTERN"
	ErrCodeParseFailed     string = "PARSE_FAILED"
	ErrCodeUnknownZone     string = "UNKNOWN_ZONE"
	ErrCodeIllegalArgument string = "ILLEGAL_ARGUMENT"
)

var (
	ErrAbsentInstant   *ChronoErr = NewErrfCode(ErrCodeAbsentInstant, "Date has no instant")
	ErrInvalidPattern  *ChronoErr = NewErrfCode(ErrCodeInvalidPattern, "Invalid date pattern")
	ErrParseFailed     *ChronoErr = NewErrfCode(ErrCodeParseFailed, "Failed to parse date")
	ErrUnknownZone     *ChronoErr = NewErrfCode(ErrCodeUnknownZone, "Unknown time zone")
	ErrIllegalArgument *ChronoErr = NewErrfCode(ErrCodeIllegalArgument, "Illegal Argument")
)

// Chrono Error.
//
//	Use NewErrfCode(...) to instantiate.
type ChronoErr struct {
	code        string // error code.
	msg         string // error message.
	internalMsg string // extra context, e.g., the offending value.
	stack       string
	err         error
}

// Create new *ChronoErr to wrap the cause error
//
// if cause is nil, nil is returned.
func (e *ChronoErr) Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	return n
}

// Create new *ChronoErr to wrap the cause error
//
// if cause is nil, nil is returned.
func (e *ChronoErr) Wrapf(cause error, internalMsg string, args ...any) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	if len(args) > 0 {
		n.internalMsg = fmt.Sprintf(internalMsg, args...)
	} else {
		n.internalMsg = internalMsg
	}
	return n
}

// Create new *ChronoErr with the same code and message, and a fresh stack trace.
func (e *ChronoErr) New() error {
	n := e.copyNew()
	n.withStack()
	return n
}

func (e *ChronoErr) WithInternalMsg(msg string, args ...any) *ChronoErr {
	ne := e.copyNew()
	ne.withStack()
	if len(args) > 0 {
		ne.internalMsg = fmt.Sprintf(msg, args...)
	} else {
		ne.internalMsg = msg
	}
	return ne
}

func (e *ChronoErr) copyNew() *ChronoErr {
	n := new(ChronoErr)
	n.code = e.code
	n.msg = e.msg
	n.internalMsg = e.internalMsg
	n.stack = e.stack
	n.err = e.err
	return n
}

func (e *ChronoErr) Error() string {
	tok := []string{}
	if e.msg != "" {
		tok = append(tok, e.msg)
	}
	if e.internalMsg != "" {
		tok = append(tok, e.internalMsg)
	}
	if uw := e.Unwrap(); uw != nil {
		tok = append(tok, uw.Error())
	}
	return strings.Join(tok, ", ")
}

// Implements *ChronoErr Is check.
//
// Returns true, if both are *ChronoErr and the code matches.
//
// WithInternalMsg always create new error, so the predefined errors can be reused as sentinels:
//
//	var e1 = ErrParseFailed.WithInternalMsg(...)
//
//	errors.Is(e1, ErrParseFailed) // true
func (e *ChronoErr) Is(target error) bool {
	if tme, ok := target.(*ChronoErr); ok && e.code != "" && e.code == tme.code {
		return true
	}
	return false
}

func (e *ChronoErr) Unwrap() error {
	return e.err
}

func (e *ChronoErr) withStack() *ChronoErr {
	e.stack = stack(3)
	return e
}

// Create new *ChronoErr with message and error code.
func NewErrfCode(code string, msg string, args ...any) *ChronoErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &ChronoErr{msg: msg, code: code}
	me.withStack()
	return me
}

// Wrap an error to create new *ChronoErr with stacktrace.
//
// If err is nil, nil is returned.
//
// If err is *ChronoErr, err is returned directly.
func WrapErr(err error) error {
	if err == nil {
		return nil
	}
	if me, ok := err.(*ChronoErr); ok {
		return me
	}
	me := &ChronoErr{err: err}
	me.withStack()
	return me
}

// Wrap err with extra context, the code of err is kept if err is *ChronoErr.
//
// If err is nil, nil is returned.
func Wrapf(err error, internalMsg string, args ...any) error {
	if err == nil {
		return nil
	}
	n := &ChronoErr{err: err}
	var me *ChronoErr
	if errors.As(err, &me) {
		n.code = me.code
	}
	n.withStack()
	if len(args) > 0 {
		n.internalMsg = fmt.Sprintf(internalMsg, args...)
	} else {
		n.internalMsg = internalMsg
	}
	return n
}

// Check whether err carries the given code.
func HasCode(err error, code string) bool {
	var me *ChronoErr
	if errors.As(err, &me) {
		return me.code == code
	}
	return false
}

func unwrapErrStack(err error) (string, bool) {
	var stack string
	var ue error = err
	for {
		if me, ok := ue.(*ChronoErr); ok && me != nil {
			stack = me.stack
		}
		u := errors.Unwrap(ue)
		if u == nil {
			break
		}
		ue = u
	}
	return stack, stack != ""
}

func ErrorStackTrace(err error) string {
	if err == nil {
		return "nil"
	}
	stackTrace, withStack := unwrapErrStack(err)
	m := err.Error()
	if withStack {
		m += stackTrace
	}
	return m
}

var stackPool = sync.Pool{
	New: func() any {
		var v []uintptr = make([]uintptr, 50)
		return &v
	},
}

func stack(n int) string {
	stack := stackPool.Get().(*[]uintptr)
	defer func() {
		clear(*stack)
		stackPool.Put(stack)
	}()

	length := runtime.Callers(n, *stack)
	frames := runtime.CallersFrames((*stack)[:length])
	b := strings.Builder{}

	for {
		f, next := frames.Next()
		if !next {
			break
		}
		b.WriteString(fmt.Sprintf("\n\t%v\n\t\t%v:%v", f.Function, f.File, f.Line))
	}
	return b.String()
}
