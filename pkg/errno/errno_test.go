package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	t.Run("NilIsSuccess", func(t *testing.T) {
		e := ConvertErr(nil)
		if e.ErrCode != SuccessCode {
			t.Errorf("expected code %d, got %d", SuccessCode, e.ErrCode)
		}
	})

	t.Run("ErrNoPassesThrough", func(t *testing.T) {
		e := ConvertErr(NotFoundErr)
		if e.ErrCode != NotFoundCode {
			t.Errorf("expected code %d, got %d", NotFoundCode, e.ErrCode)
		}
	})

	t.Run("WrappedErrNoUnwraps", func(t *testing.T) {
		wrapped := errors.WithMessage(PermissionErr, "delete video")
		e := ConvertErr(wrapped)
		if e.ErrCode != PermErrCode {
			t.Errorf("expected code %d, got %d", PermErrCode, e.ErrCode)
		}
	})

	t.Run("UnknownErrorBecomesServiceErr", func(t *testing.T) {
		e := ConvertErr(errors.New("mysql gone away"))
		if e.ErrCode != ServiceErrCode {
			t.Errorf("expected code %d, got %d", ServiceErrCode, e.ErrCode)
		}
		if e.ErrMsg != "mysql gone away" {
			t.Errorf("expected original message, got %q", e.ErrMsg)
		}
	})
}

func TestWithMessage(t *testing.T) {
	e := ParamErr.WithMessage("title is required")
	if e.ErrCode != ParamErrCode {
		t.Errorf("expected code %d, got %d", ParamErrCode, e.ErrCode)
	}
	if e.ErrMsg != "title is required" {
		t.Errorf("unexpected message: %q", e.ErrMsg)
	}
	// the shared value must stay untouched
	if ParamErr.ErrMsg == "title is required" {
		t.Error("WithMessage mutated the shared errno value")
	}
}
