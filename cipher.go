package encryptobj

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/chacha20"
)

// Provider performs the cipher operations behind an EncryptedProxy.
type Provider interface {
	// Ciphers returns the identifiers of all supported ciphers
	Ciphers() []string

	// Supports reports whether the named cipher is available
	Supports(name string) bool

	// IVLength returns the IV size in bytes for the named cipher
	IVLength(name string) (int, error)

	// Encrypt encrypts plaintext with the named cipher. When raw is false
	// the returned ciphertext is base64 text rather than raw bytes.
	Encrypt(plaintext []byte, name string, key, iv []byte, raw bool) ([]byte, error)

	// Decrypt reverses Encrypt. When raw is false the ciphertext argument
	// must be base64 text.
	Decrypt(ciphertext []byte, name string, key, iv []byte, raw bool) ([]byte, error)
}

// cipherMode identifies how a registered cipher turns a key and IV into a
// transformation
type cipherMode uint8

const (
	modeCBC cipherMode = iota
	modeCTR
	modeChaCha20
)

// cipherSpec holds the per-cipher parameters used for registry lookups.
// A keySize of 0 means the cipher accepts variable-length keys and the
// key is passed through without conditioning.
type cipherSpec struct {
	keySize  int
	ivSize   int
	mode     cipherMode
	newBlock func(key []byte) (cipher.Block, error)
}

var cipherSpecs = map[string]cipherSpec{
	"AES-128-CBC":  {keySize: 16, ivSize: aes.BlockSize, mode: modeCBC, newBlock: aes.NewCipher},
	"AES-192-CBC":  {keySize: 24, ivSize: aes.BlockSize, mode: modeCBC, newBlock: aes.NewCipher},
	"AES-256-CBC":  {keySize: 32, ivSize: aes.BlockSize, mode: modeCBC, newBlock: aes.NewCipher},
	"AES-128-CTR":  {keySize: 16, ivSize: aes.BlockSize, mode: modeCTR, newBlock: aes.NewCipher},
	"AES-256-CTR":  {keySize: 32, ivSize: aes.BlockSize, mode: modeCTR, newBlock: aes.NewCipher},
	"DES-CBC":      {keySize: 8, ivSize: des.BlockSize, mode: modeCBC, newBlock: des.NewCipher},
	"DES-EDE3-CBC": {keySize: 24, ivSize: des.BlockSize, mode: modeCBC, newBlock: des.NewTripleDESCipher},
	"BF-CBC":       {keySize: 0, ivSize: blowfish.BlockSize, mode: modeCBC, newBlock: newBlowfishBlock},
	"CHACHA20":     {keySize: chacha20.KeySize, ivSize: chacha20.NonceSize, mode: modeChaCha20},
}

func newBlowfishBlock(key []byte) (cipher.Block, error) {
	return blowfish.NewCipher(key)
}

// lookupCipher resolves a cipher identifier case-insensitively
func lookupCipher(name string) (cipherSpec, error) {
	spec, ok := cipherSpecs[strings.ToUpper(name)]
	if !ok {
		return cipherSpec{}, &UnsupportedCipherError{Cipher: name}
	}
	return spec, nil
}

// conditionKey adjusts caller-supplied key material to the registry key
// size by truncating long keys and zero-padding short ones. Ciphers with
// variable-length keys receive a copy of the key unchanged.
func (s cipherSpec) conditionKey(key []byte) []byte {
	if s.keySize == 0 {
		return bytes.Clone(key)
	}
	out := make([]byte, s.keySize)
	copy(out, key)
	return out
}

// seal encrypts plaintext, applying PKCS#7 padding for block modes
func (s cipherSpec) seal(key, iv, plaintext []byte) ([]byte, error) {
	key = s.conditionKey(key)

	switch s.mode {
	case modeCBC:
		block, err := s.newBlock(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		padded := pkcs7Pad(plaintext, block.BlockSize())
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
		return out, nil

	case modeCTR:
		block, err := s.newBlock(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		out := make([]byte, len(plaintext))
		cipher.NewCTR(block, iv).XORKeyStream(out, plaintext)
		return out, nil

	case modeChaCha20:
		stream, err := chacha20.NewUnauthenticatedCipher(key, iv)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		out := make([]byte, len(plaintext))
		stream.XORKeyStream(out, plaintext)
		return out, nil

	default:
		return nil, errors.New("unknown cipher mode")
	}
}

// open decrypts ciphertext, stripping PKCS#7 padding for block modes
func (s cipherSpec) open(key, iv, ciphertext []byte) ([]byte, error) {
	key = s.conditionKey(key)

	switch s.mode {
	case modeCBC:
		block, err := s.newBlock(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		bs := block.BlockSize()
		if len(ciphertext) == 0 || len(ciphertext)%bs != 0 {
			return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size %d", len(ciphertext), bs)
		}
		padded := make([]byte, len(ciphertext))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)
		return pkcs7Unpad(padded, bs)

	case modeCTR:
		block, err := s.newBlock(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		out := make([]byte, len(ciphertext))
		cipher.NewCTR(block, iv).XORKeyStream(out, ciphertext)
		return out, nil

	case modeChaCha20:
		stream, err := chacha20.NewUnauthenticatedCipher(key, iv)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		out := make([]byte, len(ciphertext))
		stream.XORKeyStream(out, ciphertext)
		return out, nil

	default:
		return nil, errors.New("unknown cipher mode")
	}
}

// pkcs7Pad appends PKCS#7 padding up to the next block boundary
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

// pkcs7Unpad validates and strips PKCS#7 padding
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}

// stdProvider implements Provider on top of the package cipher registry
type stdProvider struct{}

var defaultProvider Provider = stdProvider{}

// DefaultProvider returns the package's built-in crypto provider
func DefaultProvider() Provider {
	return defaultProvider
}

// Ciphers returns the supported cipher identifiers in sorted order
func (stdProvider) Ciphers() []string {
	names := make([]string, 0, len(cipherSpecs))
	for name := range cipherSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether the named cipher is in the registry
func (stdProvider) Supports(name string) bool {
	_, err := lookupCipher(name)
	return err == nil
}

// IVLength returns the IV size in bytes for the named cipher
func (stdProvider) IVLength(name string) (int, error) {
	spec, err := lookupCipher(name)
	if err != nil {
		return 0, err
	}
	return spec.ivSize, nil
}

// Encrypt encrypts plaintext using the named cipher
func (stdProvider) Encrypt(plaintext []byte, name string, key, iv []byte, raw bool) ([]byte, error) {
	spec, err := lookupCipher(name)
	if err != nil {
		return nil, err
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ValidateIV(iv, spec.ivSize, name); err != nil {
		return nil, err
	}

	ciphertext, err := spec.seal(key, iv, plaintext)
	if err != nil {
		return nil, err
	}

	if raw {
		return ciphertext, nil
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(ciphertext)))
	base64.StdEncoding.Encode(out, ciphertext)
	return out, nil
}

// Decrypt decrypts ciphertext using the named cipher
func (stdProvider) Decrypt(ciphertext []byte, name string, key, iv []byte, raw bool) ([]byte, error) {
	spec, err := lookupCipher(name)
	if err != nil {
		return nil, err
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ValidateIV(iv, spec.ivSize, name); err != nil {
		return nil, err
	}

	if !raw {
		decoded := make([]byte, base64.StdEncoding.DecodedLen(len(ciphertext)))
		n, err := base64.StdEncoding.Decode(decoded, ciphertext)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 ciphertext: %w", err)
		}
		ciphertext = decoded[:n]
	}

	return spec.open(key, iv, ciphertext)
}

// GenerateKey returns a new random key sized for the named cipher.
// Ciphers with variable-length keys get a 16-byte key.
func GenerateKey(name string) ([]byte, error) {
	spec, err := lookupCipher(name)
	if err != nil {
		return nil, err
	}

	size := spec.keySize
	if size == 0 {
		size = 16
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}
