package encryptobj

import (
	"bytes"
	"fmt"
)

// EncryptedProxy wraps an Entity with transparent field-level encryption.
// Fields named in the configuration are encrypted before being stored on
// the inner entity and decrypted on retrieval; all other fields and method
// calls pass through unchanged.
type EncryptedProxy struct {
	inner       Entity
	provider    Provider
	random      RandomSource
	cipherName  string
	key         []byte
	fields      map[string]struct{}
	encoding    EncodingMode
	allowWeakIV bool
	ivLen       int
}

// New creates a proxy around inner using the named cipher and key.
// The cipher, key, field classification and encoding mode are fixed for
// the proxy's lifetime. The inner entity is owned by the caller; the proxy
// never clones or destroys it.
func New(inner Entity, key []byte, cipherName string, config *Config) (*EncryptedProxy, error) {
	if inner == nil {
		return nil, &ValidationError{Field: "inner", Message: "inner entity cannot be nil"}
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	provider := config.Provider
	if provider == nil {
		provider = DefaultProvider()
	}
	if provider == nil {
		return nil, &CryptoUnavailableError{Message: "no crypto provider configured"}
	}
	if len(provider.Ciphers()) == 0 {
		return nil, &CryptoUnavailableError{Message: "crypto provider supports no ciphers"}
	}
	if !provider.Supports(cipherName) {
		return nil, &UnsupportedCipherError{Cipher: cipherName}
	}

	ivLen, err := provider.IVLength(cipherName)
	if err != nil {
		return nil, err
	}

	random := config.Random
	if random == nil {
		random = DefaultRandomSource()
	}

	encoding := config.Encoding
	if !encoding.valid() {
		encoding = EncodingTextSafe
	}

	fields := make(map[string]struct{}, len(config.EncryptedFields))
	for _, name := range config.EncryptedFields {
		fields[name] = struct{}{}
	}

	return &EncryptedProxy{
		inner:       inner,
		provider:    provider,
		random:      random,
		cipherName:  cipherName,
		key:         bytes.Clone(key),
		fields:      fields,
		encoding:    encoding,
		allowWeakIV: config.AllowWeakIV,
		ivLen:       ivLen,
	}, nil
}

// IsEncrypted reports whether the named field is classified as encrypted.
// Read and write paths share this test, so a field is always treated the
// same way in both directions.
func (p *EncryptedProxy) IsEncrypted(field string) bool {
	_, ok := p.fields[field]
	return ok
}

// SetField stores plaintext under field, encrypting it first when the
// field is classified as encrypted. On any failure the inner entity is
// left unmodified.
func (p *EncryptedProxy) SetField(field string, plaintext []byte) error {
	if err := ValidateFieldName(field); err != nil {
		return err
	}

	if !p.IsEncrypted(field) {
		p.inner.SetField(field, plaintext)
		return nil
	}

	iv, strong, err := p.random.ReadRandom(p.ivLen)
	if err != nil {
		return fmt.Errorf("failed to draw iv: %w", err)
	}
	if !strong && !p.allowWeakIV {
		return &WeakRandomnessError{Needed: p.ivLen}
	}

	ciphertext, err := p.provider.Encrypt(plaintext, p.cipherName, p.key, iv, p.encoding == EncodingRaw)
	if err != nil {
		return fmt.Errorf("failed to encrypt field %q: %w", field, err)
	}

	p.inner.SetField(field, encodeStored(iv, ciphertext, p.encoding))
	return nil
}

// GetField retrieves the value stored under field, decrypting it when the
// field is classified as encrypted. An absent encrypted field yields a nil
// value and no error.
func (p *EncryptedProxy) GetField(field string) ([]byte, error) {
	if err := ValidateFieldName(field); err != nil {
		return nil, err
	}

	stored, ok := p.inner.GetField(field)
	if !p.IsEncrypted(field) {
		return stored, nil
	}
	if !ok {
		return nil, nil
	}

	iv, ciphertext, err := splitStored(stored, p.ivLen, p.encoding)
	if err != nil {
		return nil, &MalformedStoredValueError{Field: field, Message: err.Error()}
	}

	plaintext, err := p.provider.Decrypt(ciphertext, p.cipherName, p.key, iv, p.encoding == EncodingRaw)
	if err != nil {
		return nil, &DecryptionError{Field: field, Err: err}
	}
	return plaintext, nil
}

// SetString stores a string value under field
func (p *EncryptedProxy) SetString(field, plaintext string) error {
	return p.SetField(field, []byte(plaintext))
}

// GetString retrieves the value stored under field as a string
func (p *EncryptedProxy) GetString(field string) (string, error) {
	value, err := p.GetField(field)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// HasField reports whether the inner entity holds a value for field
func (p *EncryptedProxy) HasField(field string) bool {
	return p.inner.HasField(field)
}

// RemoveField deletes the value stored under field on the inner entity
func (p *EncryptedProxy) RemoveField(field string) bool {
	return p.inner.RemoveField(field)
}

// Invoke forwards a method call to the inner entity unchanged
func (p *EncryptedProxy) Invoke(method string, args ...any) (any, error) {
	return p.inner.Invoke(method, args...)
}

// Cipher returns the cipher identifier the proxy was constructed with
func (p *EncryptedProxy) Cipher() string {
	return p.cipherName
}

// Encoding returns the stored-value encoding mode
func (p *EncryptedProxy) Encoding() EncodingMode {
	return p.encoding
}

// EncryptedFields returns a copy of the encrypted field names
func (p *EncryptedProxy) EncryptedFields() []string {
	names := make([]string, 0, len(p.fields))
	for name := range p.fields {
		names = append(names, name)
	}
	return names
}
