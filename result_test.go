package ioerror

import (
	"errors"
	"testing"
)

func TestResult_Ok(t *testing.T) {
	t.Parallel()

	r := Ok(42)
	if !r.IsOk() {
		t.Fatalf("Ok(42).IsOk() = false")
	}
	if v, ok := r.Value(); !ok || v != 42 {
		t.Fatalf("Value() = (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := r.Err(); ok {
		t.Fatalf("Err() reported an error on success")
	}
	v, err := r.Get()
	if err != nil || v != 42 {
		t.Fatalf("Get() = (%d, %v), want (42, nil)", v, err)
	}
	if r.Must() != 42 {
		t.Fatalf("Must() = %d, want 42", r.Must())
	}
}

func TestResult_Fail(t *testing.T) {
	t.Parallel()

	want := New(4, "end of stream")
	r := Fail[[]byte](want)
	if r.IsOk() {
		t.Fatalf("Fail(...).IsOk() = true")
	}
	if v, ok := r.Value(); ok || v != nil {
		t.Fatalf("Value() = (%v, %v), want (nil, false)", v, ok)
	}
	if got, ok := r.Err(); !ok || got != want {
		t.Fatalf("Err() = (%#v, %v), want (%#v, true)", got, ok, want)
	}

	v, err := r.Get()
	if v != nil {
		t.Fatalf("Get() value = %v, want nil", v)
	}
	var got Error
	if !errors.As(err, &got) || got != want {
		t.Fatalf("Get() error = %v, want %#v", err, want)
	}
}

func TestResult_GetOkReturnsUntypedNil(t *testing.T) {
	t.Parallel()

	_, err := Ok("x").Get()
	if err != nil {
		t.Fatalf("Get() on success returned non-nil error %#v", err)
	}
}

func TestResult_MustPanicsWithError(t *testing.T) {
	t.Parallel()

	want := FromKind(8)
	defer func() {
		rec := recover()
		got, ok := rec.(Error)
		if !ok || got != want {
			t.Fatalf("recovered %#v, want %#v", rec, want)
		}
	}()
	_ = Fail[int](want).Must()
	t.Fatalf("Must() did not panic")
}

func TestResult_ZeroValueIsOk(t *testing.T) {
	t.Parallel()

	var r Result[int]
	if v, ok := r.Value(); !ok || v != 0 {
		t.Fatalf("zero Result Value() = (%d, %v), want (0, true)", v, ok)
	}
}

func TestResult_FailWithZeroError(t *testing.T) {
	t.Parallel()

	// The zero Error is a valid failure; Result must not confuse it with success.
	r := Fail[int](Error{})
	if r.IsOk() {
		t.Fatalf("Fail(Error{}).IsOk() = true")
	}
	if _, err := r.Get(); err == nil {
		t.Fatalf("Fail(Error{}).Get() returned nil error")
	}
}
