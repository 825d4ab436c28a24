package encryptobj

import (
	"bytes"
	"encoding/base64"
	"sort"
	"testing"
)

func TestProvider_Ciphers(t *testing.T) {
	names := DefaultProvider().Ciphers()
	if len(names) == 0 {
		t.Fatal("provider advertises no ciphers")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("cipher list is not sorted")
	}

	for _, want := range []string{"AES-128-CBC", "AES-256-CBC", "DES-CBC", "BF-CBC", "CHACHA20"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("cipher %q missing from registry", want)
		}
	}
}

func TestProvider_SupportsCaseInsensitive(t *testing.T) {
	provider := DefaultProvider()

	if !provider.Supports("aes-128-cbc") {
		t.Error("lowercase identifier not supported")
	}
	if !provider.Supports("ChaCha20") {
		t.Error("mixed-case identifier not supported")
	}
	if provider.Supports("ROT13") {
		t.Error("unknown identifier reported as supported")
	}
}

func TestProvider_IVLength(t *testing.T) {
	tests := []struct {
		cipherName string
		want       int
	}{
		{"AES-128-CBC", 16},
		{"AES-256-CBC", 16},
		{"AES-128-CTR", 16},
		{"DES-CBC", 8},
		{"DES-EDE3-CBC", 8},
		{"BF-CBC", 8},
		{"CHACHA20", 12},
	}

	for _, tt := range tests {
		t.Run(tt.cipherName, func(t *testing.T) {
			got, err := DefaultProvider().IVLength(tt.cipherName)
			if err != nil {
				t.Fatalf("IVLength failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IVLength = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := DefaultProvider().IVLength("ROT13"); !IsUnsupportedCipherError(err) {
		t.Errorf("expected unsupported cipher error, got %v", err)
	}
}

func TestProvider_EncryptDecrypt(t *testing.T) {
	ciphers := []string{
		"AES-128-CBC", "AES-192-CBC", "AES-256-CBC",
		"AES-128-CTR", "AES-256-CTR",
		"DES-CBC", "DES-EDE3-CBC", "BF-CBC", "CHACHA20",
	}
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	provider := DefaultProvider()
	for _, cipherName := range ciphers {
		t.Run(cipherName, func(t *testing.T) {
			key, err := GenerateKey(cipherName)
			if err != nil {
				t.Fatalf("failed to generate key: %v", err)
			}
			ivLen, err := provider.IVLength(cipherName)
			if err != nil {
				t.Fatalf("failed to look up iv length: %v", err)
			}
			iv := bytes.Repeat([]byte{0x24}, ivLen)

			ciphertext, err := provider.Encrypt(plaintext, cipherName, key, iv, true)
			if err != nil {
				t.Fatalf("encryption failed: %v", err)
			}
			if bytes.Equal(ciphertext, plaintext) {
				t.Fatal("ciphertext equals plaintext")
			}

			got, err := provider.Decrypt(ciphertext, cipherName, key, iv, true)
			if err != nil {
				t.Fatalf("decryption failed: %v", err)
			}
			if !bytes.Equal(got, plaintext) {
				t.Errorf("round trip = %q, want %q", got, plaintext)
			}
		})
	}
}

func TestProvider_TextCiphertext(t *testing.T) {
	provider := DefaultProvider()
	key := []byte("0123456789abcdef")
	iv := bytes.Repeat([]byte{0x42}, 16)
	plaintext := []byte("hello")

	ciphertext, err := provider.Encrypt(plaintext, "AES-128-CBC", key, iv, false)
	if err != nil {
		t.Fatalf("encryption failed: %v", err)
	}
	if _, err := base64.StdEncoding.DecodeString(string(ciphertext)); err != nil {
		t.Fatalf("text ciphertext is not valid base64: %v", err)
	}

	got, err := provider.Decrypt(ciphertext, "AES-128-CBC", key, iv, false)
	if err != nil {
		t.Fatalf("decryption failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("round trip = %q, want %q", got, plaintext)
	}

	if _, err := provider.Decrypt([]byte("not*base64"), "AES-128-CBC", key, iv, false); err == nil {
		t.Error("expected error for invalid base64 ciphertext")
	}
}

func TestProvider_KeyConditioning(t *testing.T) {
	provider := DefaultProvider()
	iv := bytes.Repeat([]byte{0x11}, 16)
	plaintext := []byte("conditioned keys agree")

	t.Run("long key truncated", func(t *testing.T) {
		long := []byte("SECRET_KEY_6X2tjYipm4Wr8Sl0") // 27 bytes
		short := long[:16]

		ciphertext, err := provider.Encrypt(plaintext, "AES-128-CBC", long, iv, true)
		if err != nil {
			t.Fatalf("encryption failed: %v", err)
		}
		got, err := provider.Decrypt(ciphertext, "AES-128-CBC", short, iv, true)
		if err != nil {
			t.Fatalf("decryption with truncated key failed: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("round trip = %q, want %q", got, plaintext)
		}
	})

	t.Run("short key zero-padded", func(t *testing.T) {
		short := []byte("abc")
		padded := make([]byte, 16)
		copy(padded, short)

		ciphertext, err := provider.Encrypt(plaintext, "AES-128-CBC", short, iv, true)
		if err != nil {
			t.Fatalf("encryption failed: %v", err)
		}
		got, err := provider.Decrypt(ciphertext, "AES-128-CBC", padded, iv, true)
		if err != nil {
			t.Fatalf("decryption with padded key failed: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("round trip = %q, want %q", got, plaintext)
		}
	})

	t.Run("blowfish key used verbatim", func(t *testing.T) {
		oversized := bytes.Repeat([]byte{0x01}, 60)
		iv8 := bytes.Repeat([]byte{0x11}, 8)
		if _, err := provider.Encrypt(plaintext, "BF-CBC", oversized, iv8, true); err == nil {
			t.Error("expected error for a 60-byte blowfish key")
		}
	})
}

func TestProvider_InvalidInputs(t *testing.T) {
	provider := DefaultProvider()

	if _, err := provider.Encrypt([]byte("x"), "ROT13", []byte("key"), nil, true); !IsUnsupportedCipherError(err) {
		t.Errorf("expected unsupported cipher error, got %v", err)
	}
	if _, err := provider.Encrypt([]byte("x"), "AES-128-CBC", nil, bytes.Repeat([]byte{0}, 16), true); !IsValidationError(err) {
		t.Errorf("expected validation error for empty key, got %v", err)
	}
	if _, err := provider.Encrypt([]byte("x"), "AES-128-CBC", []byte("key"), []byte("shortiv"), true); !IsValidationError(err) {
		t.Errorf("expected validation error for wrong iv size, got %v", err)
	}
	if _, err := provider.Decrypt([]byte("x"), "AES-128-CBC", []byte("key"), []byte("shortiv"), true); !IsValidationError(err) {
		t.Errorf("expected validation error for wrong iv size, got %v", err)
	}
}

func TestPKCS7(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for length := 0; length <= 48; length++ {
			data := bytes.Repeat([]byte{0x61}, length)
			padded := pkcs7Pad(data, 16)
			if len(padded)%16 != 0 {
				t.Fatalf("padded length %d is not block aligned", len(padded))
			}
			got, err := pkcs7Unpad(padded, 16)
			if err != nil {
				t.Fatalf("unpad failed for length %d: %v", length, err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("round trip mismatch for length %d", length)
			}
		}
	})

	t.Run("invalid padding", func(t *testing.T) {
		cases := [][]byte{
			bytes.Repeat([]byte{0x00}, 16),               // zero pad byte
			append(bytes.Repeat([]byte{0x61}, 15), 0x20), // pad byte exceeds block size
			{0x01, 0x02},                                 // not block aligned
			{},                                           // empty
		}
		for i, data := range cases {
			if _, err := pkcs7Unpad(data, 16); err == nil {
				t.Errorf("case %d: expected error for invalid padding", i)
			}
		}
	})
}

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		cipherName string
		want       int
	}{
		{"AES-128-CBC", 16},
		{"AES-192-CBC", 24},
		{"AES-256-CBC", 32},
		{"DES-CBC", 8},
		{"BF-CBC", 16},
		{"CHACHA20", 32},
	}

	for _, tt := range tests {
		t.Run(tt.cipherName, func(t *testing.T) {
			key, err := GenerateKey(tt.cipherName)
			if err != nil {
				t.Fatalf("GenerateKey failed: %v", err)
			}
			if len(key) != tt.want {
				t.Errorf("key length = %d, want %d", len(key), tt.want)
			}
		})
	}

	if _, err := GenerateKey("ROT13"); !IsUnsupportedCipherError(err) {
		t.Errorf("expected unsupported cipher error, got %v", err)
	}
}
