// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/duscan/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_parse_error",
			code:    errors.ErrConfigParse,
			message: "bad exclude pattern",
			wantStr: "[CONFIG_PARSE] bad exclude pattern",
		},
		{
			name:    "scan_root_error",
			code:    errors.ErrScanRoot,
			message: "cannot stat scan root",
			wantStr: "[SCAN_ROOT] cannot stat scan root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("file does not exist")
	err := errors.Wrap(inner, errors.ErrConfigLoad, "failed to load config")

	if got := err.Error(); got != "[CONFIG_LOAD] failed to load config: file does not exist" {
		t.Errorf("Error() = %q", got)
	}

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should unwrap to inner error")
	}

	if errors.Wrap(nil, errors.ErrConfigLoad, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	inner := stderrors.New("boom")
	err := errors.Wrapf(inner, errors.ErrScanAccess, "failed to read %s", "some/dir")

	if err.Message != "failed to read some/dir" {
		t.Errorf("Wrapf() message = %q", err.Message)
	}

	if err.Code != errors.ErrScanAccess {
		t.Errorf("Wrapf() code = %v", err.Code)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrRuleInvalid, "rule 3 has an empty pattern")

	if !errors.IsErrorCode(err, errors.ErrRuleInvalid) {
		t.Error("IsErrorCode should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrRuleInvalid) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrTopicNotFound, "no such topic")

	if got := errors.GetErrorCode(err); got != errors.ErrTopicNotFound {
		t.Errorf("GetErrorCode() = %v", got)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want UNKNOWN", got)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "invalid pattern").
		WithDetail("pattern", "[unclosed").
		WithDetail("index", 2)

	if err.Details["pattern"] != "[unclosed" {
		t.Errorf("Details[pattern] = %v", err.Details["pattern"])
	}
	if err.Details["index"] != 2 {
		t.Errorf("Details[index] = %v", err.Details["index"])
	}
}

func TestErrorsIs_SameCode(t *testing.T) {
	err := errors.Wrap(stderrors.New("inner"), errors.ErrScanRoot, "stat failed")
	target := errors.New(errors.ErrScanRoot, "anything")

	if !stderrors.Is(err, target) {
		t.Error("errors with the same code should satisfy errors.Is")
	}
}
