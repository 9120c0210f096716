package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrInvalidInput, "bad input")

	if err.Code != ErrInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrInvalidInput)
	}
	if err.Message != "bad input" {
		t.Errorf("Message = %q, want %q", err.Message, "bad input")
	}
	if err.Error() != "[INVALID_INPUT] bad input" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrNotFound, "no codec registered for %q", "cbor")

	want := `[NOT_FOUND] no codec registered for "cbor"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := fmt.Errorf("underlying failure")
		err := Wrap(cause, ErrConfigLoad, "could not load config")

		if !errors.Is(err, cause) {
			t.Error("wrapped error does not match cause with errors.Is")
		}
		if errors.Unwrap(err) != cause {
			t.Error("Unwrap() did not return the cause")
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if Wrap(nil, ErrConfigLoad, "ignored") != nil {
			t.Error("Wrap(nil, ...) should return nil")
		}
		if Wrapf(nil, ErrConfigLoad, "ignored %d", 1) != nil {
			t.Error("Wrapf(nil, ...) should return nil")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", New(ErrPluginBuild, "x"), ErrPluginBuild, true},
		{"different code", New(ErrPluginBuild, "x"), ErrNotFound, false},
		{"wrapped in plain error", fmt.Errorf("outer: %w", New(ErrCodecDecode, "x")), ErrCodecDecode, true},
		{"plain error", errors.New("plain"), ErrUnknown, false},
		{"nil error", nil, ErrUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsErrorCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(New(ErrConfigParse, "x")); got != ErrConfigParse {
		t.Errorf("GetErrorCode() = %v, want %v", got, ErrConfigParse)
	}
	if got := GetErrorCode(errors.New("plain")); got != ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPluginBuild, "x").WithDetail("family", "codecs.Codec")

	details := GetErrorDetails(err)
	if details["family"] != "codecs.Codec" {
		t.Errorf("details[family] = %v, want codecs.Codec", details["family"])
	}
	if GetErrorDetails(errors.New("plain")) != nil {
		t.Error("GetErrorDetails(plain) should return nil")
	}
}
