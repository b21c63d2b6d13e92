package errors

import (
	"strings"
	"unicode/utf8"
)

// ValidateName checks that a caller-supplied identifier is representable at
// the engine boundary. Identifiers travel as C strings on the native side,
// so an embedded NUL byte cannot be represented and is rejected rather than
// silently truncated.
//
// Empty names are permitted; the engine treats them as anonymous.
func ValidateName(name string) error {
	if strings.IndexByte(name, 0) >= 0 {
		return New(ErrCodeInvalidString, "name contains an embedded NUL byte")
	}
	return nil
}

// ValidateValue checks that an attribute value is representable at the engine
// boundary. Values share the C-string constraint with names.
func ValidateValue(value string) error {
	if strings.IndexByte(value, 0) >= 0 {
		return New(ErrCodeInvalidString, "value contains an embedded NUL byte")
	}
	return nil
}

// ValidateUTF8 checks that engine-returned bytes decode as valid UTF-8 text.
// Used wherever raw bytes are surfaced to the caller as a string.
func ValidateUTF8(data []byte) error {
	if !utf8.Valid(data) {
		return New(ErrCodeInvalidUTF8, "bytes are not valid UTF-8 text")
	}
	return nil
}
