package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrIs(t *testing.T) {
	e1 := ErrParseFailed.WithInternalMsg("value: %v", "2024-13-45")
	if !errors.Is(e1, ErrParseFailed) {
		t.Fatal("e1 should be ErrParseFailed")
	}
	if errors.Is(e1, ErrAbsentInstant) {
		t.Fatal("e1 should not be ErrAbsentInstant")
	}
	wrapped := fmt.Errorf("outer, %w", e1)
	if !errors.Is(wrapped, ErrParseFailed) {
		t.Fatal("wrapped should be ErrParseFailed")
	}
	if !HasCode(wrapped, ErrCodeParseFailed) {
		t.Fatal("wrapped should have code PARSE_FAILED")
	}
	t.Logf("%v", e1)
}

func TestErrWrap(t *testing.T) {
	if ErrUnknownZone.Wrap(nil) != nil {
		t.Fatal("wrapping nil should return nil")
	}
	cause := errors.New("unknown time zone Mars/Olympus")
	err := ErrUnknownZone.Wrapf(cause, "zone: %v", "Mars/Olympus")
	if !errors.Is(err, cause) {
		t.Fatal("err should wrap cause")
	}
	if !errors.Is(err, ErrUnknownZone) {
		t.Fatal("err should be ErrUnknownZone")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Unknown time zone") || !strings.Contains(msg, "Mars/Olympus") {
		t.Fatalf("unexpected msg: %v", msg)
	}
}

func TestErrorStackTrace(t *testing.T) {
	err := WrapErr(errors.New("boom"))
	st := ErrorStackTrace(err)
	if !strings.Contains(st, "TestErrorStackTrace") {
		t.Fatalf("stack trace missing caller: %v", st)
	}
	if WrapErr(nil) != nil {
		t.Fatal("WrapErr(nil) should be nil")
	}
	if ErrorStackTrace(nil) != "nil" {
		t.Fatal("ErrorStackTrace(nil) should be 'nil'")
	}
}

func TestWrapfKeepsCode(t *testing.T) {
	inner := ErrIllegalArgument.WithInternalMsg("unknown weekday 'someday'")
	err := Wrapf(inner, "failed to apply '%v'", "nearestNextDay:someday")
	if !errors.Is(err, ErrIllegalArgument) || !HasCode(err, ErrCodeIllegalArgument) {
		t.Fatalf("code should be kept: %v", err)
	}
	if !strings.Contains(err.Error(), "nearestNextDay:someday") || !strings.Contains(err.Error(), "someday") {
		t.Fatalf("unexpected msg: %v", err)
	}

	plain := Wrapf(errors.New("boom"), "ctx")
	if HasCode(plain, ErrCodeIllegalArgument) || plain.Error() != "ctx, boom" {
		t.Fatalf("unexpected: %v", plain)
	}
	if Wrapf(nil, "ctx") != nil {
		t.Fatal("wrapping nil should return nil")
	}
}
