package encryptobj

import (
	"fmt"
)

// Input validation helpers shared by the proxy and the provider

// ValidateKey checks that key material is present
func ValidateKey(key []byte) error {
	if len(key) == 0 {
		return &ValidationError{
			Field:   "key",
			Message: "key cannot be empty",
		}
	}
	return nil
}

// ValidateIV checks that an IV has the expected size for a cipher
func ValidateIV(iv []byte, expectedSize int, cipherName string) error {
	if iv == nil {
		return &ValidationError{
			Field:   "iv",
			Message: "iv cannot be nil",
		}
	}
	if len(iv) != expectedSize {
		return &ValidationError{
			Field:   "iv",
			Value:   len(iv),
			Message: fmt.Sprintf("invalid iv size: got %d bytes, expected %d bytes for %s", len(iv), expectedSize, cipherName),
		}
	}
	return nil
}

// ValidateFieldName checks that a field name is not empty
func ValidateFieldName(name string) error {
	if name == "" {
		return &ValidationError{
			Field:   "field",
			Message: "field name cannot be empty",
		}
	}
	return nil
}
