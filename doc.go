// Package encryptobj provides a transparent field-level encryption proxy
// for entities with named-field access.
//
// # Overview
//
// encryptobj wraps any Entity implementation and intercepts field reads
// and writes so that a configured subset of fields is encrypted before
// being stored and decrypted on retrieval. Code using the proxy sees
// plaintext; the wrapped entity only ever holds ciphertext for the
// classified fields. All other fields, existence checks, removals and
// method calls pass through unchanged.
//
// # Supported Ciphers
//
//   - AES-128/192/256-CBC and AES-128/256-CTR
//   - DES-CBC and DES-EDE3-CBC
//   - BF-CBC (Blowfish)
//   - CHACHA20
//
// Cipher identifiers are matched case-insensitively. None of these modes
// authenticate the ciphertext; callers needing tamper detection must add
// a MAC at a higher layer.
//
// # Basic Usage
//
//	entity := encryptobj.NewMapEntity()
//
//	proxy, err := encryptobj.New(entity, []byte("SECRET_KEY_6X2tjYipm4Wr8Sl0"), "AES-128-CBC", &encryptobj.Config{
//	    EncryptedFields: []string{"secret"},
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	proxy.SetString("secret", "hello")     // entity stores ciphertext
//	proxy.SetString("not_secret", "hello") // entity stores "hello" verbatim
//
//	plaintext, _ := proxy.GetString("secret") // "hello"
//
// # Stored Value Format
//
// Each encrypted field holds a single value combining a fresh random IV
// with the ciphertext, with no delimiter between them:
//
//   - Raw mode: iv || ciphertext as bytes
//   - TextSafe mode (default): base64(iv) || base64(ciphertext) as text
//
// The boundary is recovered on read from the cipher's fixed IV length, so
// a value written under one (cipher, encoding, key) configuration can
// only be read back under the same configuration.
//
// # Security Considerations
//
// A fresh IV is drawn from the configured random source for every write,
// so identical plaintexts produce different stored values. Sources that
// cannot certify a draw as cryptographically strong cause the write to
// fail unless the AllowWeakIV policy is enabled.
//
// The proxy holds the key for its lifetime and does not securely erase
// plaintext or key material from memory. It performs no key management,
// rotation or derivation; keys are used exactly as supplied.
package encryptobj
