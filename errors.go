package encryptobj

import (
	"errors"
	"fmt"
)

// Error types represent different categories of errors

// ValidationError represents a configuration or parameter validation error
type ValidationError struct {
	Field   string // The field or parameter that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UnsupportedCipherError reports a cipher identifier that the crypto
// provider does not support.
type UnsupportedCipherError struct {
	Cipher string // The requested cipher identifier
}

func (e *UnsupportedCipherError) Error() string {
	return fmt.Sprintf("unsupported cipher: %q", e.Cipher)
}

// CryptoUnavailableError reports that no usable crypto provider could be
// resolved at construction time.
type CryptoUnavailableError struct {
	Message string // Human-readable error message
}

func (e *CryptoUnavailableError) Error() string {
	return fmt.Sprintf("crypto provider unavailable: %s", e.Message)
}

// WeakRandomnessError reports an IV draw that the random source did not
// certify as cryptographically strong. The write is aborted and the inner
// entity is left unmodified.
type WeakRandomnessError struct {
	Needed int // Number of IV bytes requested from the source
}

func (e *WeakRandomnessError) Error() string {
	return fmt.Sprintf("weak randomness: %d-byte iv draw was not cryptographically strong", e.Needed)
}

// DecryptionError reports a cipher failure while reading an encrypted
// field. The read is aborted with no partial result.
type DecryptionError struct {
	Field string // The field being read
	Err   error  // Underlying cipher error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption error: field %q: %s", e.Field, e.Err)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// MalformedStoredValueError reports a stored value that cannot be split
// into its IV and ciphertext parts.
type MalformedStoredValueError struct {
	Field   string // The field being read
	Message string // Human-readable error message
}

func (e *MalformedStoredValueError) Error() string {
	return fmt.Sprintf("malformed stored value: field %q: %s", e.Field, e.Message)
}

// Common sentinel errors
var (
	// ErrUnknownMethod is returned by Invoke for a method the entity does
	// not expose.
	ErrUnknownMethod = errors.New("unknown entity method")
)

// Error checking helpers

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUnsupportedCipherError checks if an error is an unsupported cipher error
func IsUnsupportedCipherError(err error) bool {
	var ue *UnsupportedCipherError
	return errors.As(err, &ue)
}

// IsCryptoUnavailableError checks if an error is a crypto availability error
func IsCryptoUnavailableError(err error) bool {
	var ce *CryptoUnavailableError
	return errors.As(err, &ce)
}

// IsWeakRandomnessError checks if an error is a weak randomness error
func IsWeakRandomnessError(err error) bool {
	var we *WeakRandomnessError
	return errors.As(err, &we)
}

// IsDecryptionError checks if an error is a decryption error
func IsDecryptionError(err error) bool {
	var de *DecryptionError
	return errors.As(err, &de)
}

// IsMalformedStoredValueError checks if an error is a malformed stored value error
func IsMalformedStoredValueError(err error) bool {
	var me *MalformedStoredValueError
	return errors.As(err, &me)
}
