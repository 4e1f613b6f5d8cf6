package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyInput, "nothing to render")
	if err.Code != ErrCodeEmptyInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeEmptyInput)
	}
	if err.Message != "nothing to render" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Error("New should not set a cause")
	}
}

func TestNewFormatting(t *testing.T) {
	err := New(ErrCodeUnsupportedImageFormat, "unsupported image format: %q", "image/gif")
	want := `UNSUPPORTED_IMAGE_FORMAT: unsupported image format: "image/gif"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeRender, cause, "serialize document")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	want := "RENDER: serialize document: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeImageTooTall, "image exceeds page height")

	if !Is(err, ErrCodeImageTooTall) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeRender) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeRender) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("generate report: %w", err)
	if !Is(wrapped, ErrCodeImageTooTall) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeImageDecode, "bad payload")); got != ErrCodeImageDecode {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeImageDecode)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeEmptyInput, "nothing to render")
	if got := UserMessage(err); got != "nothing to render" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestValidateScale(t *testing.T) {
	tests := []struct {
		name    string
		scale   float64
		wantErr bool
	}{
		{"default", 0.5, false},
		{"full size", 1.0, false},
		{"upper bound", 10, false},
		{"zero", 0, true},
		{"negative", -0.5, true},
		{"too large", 10.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScale(tt.scale)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScale(%g) error = %v, wantErr %v", tt.scale, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidScale {
				t.Errorf("wrong code: %v", GetCode(err))
			}
		})
	}
}

func TestValidateMimeType(t *testing.T) {
	tests := []struct {
		name    string
		mime    string
		wantErr bool
	}{
		{"jpeg", "image/jpeg", false},
		{"png", "image/png", false},
		{"gif still well-formed", "image/gif", false},
		{"empty", "", true},
		{"no slash", "imagejpeg", true},
		{"whitespace", "image/ jpeg", true},
		{"control character", "image/jpeg\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMimeType(tt.mime)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMimeType(%q) error = %v, wantErr %v", tt.mime, err, tt.wantErr)
			}
		})
	}
}
