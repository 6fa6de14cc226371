package blskeys

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"strings"
)

// KeyMaterial is the 32-byte input from which a key pair is deterministically generated.
type KeyMaterial [MaterialSize]byte

// ParseKeyMaterial decodes a hex string, with or without a leading 0x, into key material.
func ParseKeyMaterial(s string) (KeyMaterial, error) {
	var m KeyMaterial

	if err := m.UnmarshalText([]byte(s)); err != nil {
		return KeyMaterial{}, err
	}

	return m, nil
}

// MarshalText encodes the key material as lower-case hex.
func (m KeyMaterial) MarshalText() ([]byte, error) {
	text := make([]byte, hex.EncodedLen(len(m)))
	hex.Encode(text, m[:])

	return text, nil
}

// UnmarshalText decodes hex text, with or without a leading 0x, into the receiver. The receiver is
// left unmodified on error.
func (m *KeyMaterial) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	if len(s) != hex.EncodedLen(MaterialSize) {
		return &DecodeError{
			Err: fmt.Errorf("%w: expected %d hex characters, got %d",
				ErrInvalidLength, hex.EncodedLen(MaterialSize), len(s)),
		}
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return &DecodeError{Err: fmt.Errorf("%w: %v", ErrInvalidHex, err)}
	}

	copy(m[:], b)

	return nil
}

var (
	_ encoding.TextMarshaler   = KeyMaterial{}
	_ encoding.TextUnmarshaler = &KeyMaterial{}
)
