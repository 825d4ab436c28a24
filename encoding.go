package encryptobj

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Stored value layout. An encrypted field holds a single value with the IV
// in front of the ciphertext and no delimiter between them:
//
//	raw:       iv || ciphertext                  (bytes)
//	text-safe: base64(iv) || base64(ciphertext)  (text)
//
// The split on read is pure length arithmetic. The base64 encoding of a
// fixed-length IV always has length 4*ceil(ivLen/3), so the boundary is
// exact for every IV length, including those whose encodings carry no
// padding characters at all.

// encodedIVLen returns the length of the base64 encoding of an IV
func encodedIVLen(ivLen int) int {
	return base64.StdEncoding.EncodedLen(ivLen)
}

// encodeStored combines an IV and ciphertext into a single stored value.
// In text-safe mode the ciphertext must already be base64 text, as
// produced by Provider.Encrypt with raw=false.
func encodeStored(iv, ciphertext []byte, mode EncodingMode) []byte {
	if mode == EncodingRaw {
		out := make([]byte, 0, len(iv)+len(ciphertext))
		out = append(out, iv...)
		return append(out, ciphertext...)
	}

	encLen := encodedIVLen(len(iv))
	out := make([]byte, encLen, encLen+len(ciphertext))
	base64.StdEncoding.Encode(out, iv)
	return append(out, ciphertext...)
}

// splitStored recovers the IV and ciphertext from a stored value
func splitStored(stored []byte, ivLen int, mode EncodingMode) (iv, ciphertext []byte, err error) {
	if mode == EncodingRaw {
		if len(stored) < ivLen {
			return nil, nil, fmt.Errorf("value is %d bytes, shorter than the %d-byte iv", len(stored), ivLen)
		}
		return stored[:ivLen], stored[ivLen:], nil
	}

	encLen := encodedIVLen(ivLen)
	if len(stored) < encLen {
		return nil, nil, fmt.Errorf("value is %d bytes, shorter than the %d-byte encoded iv", len(stored), encLen)
	}

	iv = make([]byte, base64.StdEncoding.DecodedLen(encLen))
	n, err := base64.StdEncoding.Decode(iv, stored[:encLen])
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base64 iv: %w", err)
	}
	if n != ivLen {
		return nil, nil, errors.New("encoded iv decodes to the wrong length")
	}
	return iv[:n], stored[encLen:], nil
}
