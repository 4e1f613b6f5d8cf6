package errors

import (
	"strings"
	"unicode"
)

// maxMimeTypeLen bounds mime tags accepted at the boundary. Real image mime
// types are far shorter; anything longer is garbage or an attack.
const maxMimeTypeLen = 128

// ValidateScale validates an image scale factor.
// Scale must be a positive finite ratio; values above 10 are rejected since
// upscaling a photo tenfold never fits a page and signals a unit mistake.
func ValidateScale(scale float64) error {
	if scale != scale { // NaN
		return New(ErrCodeInvalidScale, "scale must be a number")
	}
	if scale <= 0 {
		return New(ErrCodeInvalidScale, "scale must be positive, got %g", scale)
	}
	if scale > 10 {
		return New(ErrCodeInvalidScale, "scale too large (max 10), got %g", scale)
	}
	return nil
}

// ValidateMimeType checks that a mime tag is well-formed before any format
// matching happens. It does not decide whether the format is supported; it
// only rejects strings that cannot be a mime type at all.
func ValidateMimeType(mime string) error {
	if mime == "" {
		return New(ErrCodeInvalidInput, "mime type cannot be empty")
	}
	if len(mime) > maxMimeTypeLen {
		return New(ErrCodeInvalidInput, "mime type too long (max %d characters)", maxMimeTypeLen)
	}
	for _, r := range mime {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "mime type contains invalid characters")
		}
	}
	if !strings.Contains(mime, "/") {
		return New(ErrCodeInvalidInput, "malformed mime type: %q", mime)
	}
	return nil
}
